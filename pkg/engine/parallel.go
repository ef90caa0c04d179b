package engine

import (
	"context"
	"math"
	"sync/atomic"

	. "github.com/ChizhovVadim/GeneSolver/pkg/common"

	"golang.org/x/sync/errgroup"
)

// sharedBest is the state searchers of different shards exchange.
// A nil *sharedBest is valid and shares nothing.
type sharedBest struct {
	bestSize     atomic.Int64 // smallest match found by any shard
	optimalShard atomic.Int64 // lowest shard that found a single outcome match
}

func newSharedBest() *sharedBest {
	var sb = &sharedBest{}
	sb.bestSize.Store(noOutcomes)
	sb.optimalShard.Store(math.MaxInt64)
	return sb
}

// bound is the outcome count above which a tuple cannot win any more.
func (sb *sharedBest) bound() int {
	if sb == nil {
		return noOutcomes
	}
	return int(sb.bestSize.Load())
}

func (sb *sharedBest) update(size int) {
	if sb == nil {
		return
	}
	for {
		var old = sb.bestSize.Load()
		if int64(size) >= old || sb.bestSize.CompareAndSwap(old, int64(size)) {
			return
		}
	}
}

func (sb *sharedBest) onOptimal(shard int) {
	if sb == nil {
		return
	}
	for {
		var old = sb.optimalShard.Load()
		if int64(shard) >= old || sb.optimalShard.CompareAndSwap(old, int64(shard)) {
			return
		}
	}
}

// stopped reports whether an earlier shard already holds an unbeatable result.
func (sb *sharedBest) stopped(shard int) bool {
	return sb != nil && sb.optimalShard.Load() < int64(shard)
}

// searchParallel splits the tuples by their first parent. Every shard
// keeps its own best; the reduction prefers fewer outcomes, then the
// lower shard, which gives the same answer as searchSequential.
func searchParallel(ctx context.Context, e *Engine, target Profile, pool []Genome) BreedResult {
	var shared = newSharedBest()
	var results = make([]BreedResult, len(pool))

	var g = &errgroup.Group{}
	g.SetLimit(e.Options.Threads)
	for i := range pool {
		if ctx.Err() != nil || shared.stopped(i) {
			break
		}
		i := i
		g.Go(func() error {
			var s = newSearcher(e, target, pool, shared)
			s.searchFirst(ctx, i)
			s.flush()
			results[i] = s.best
			return nil
		})
	}
	g.Wait()

	var best BreedResult
	for _, result := range results {
		if result.Found && (!best.Found || result.Outcomes < best.Outcomes) {
			best = result
		}
	}
	return best
}
