package engine

import (
	"context"

	. "github.com/ChizhovVadim/GeneSolver/pkg/common"
)

// noOutcomes is larger than any real offspring count.
const noOutcomes = MaxOutcomes + 1

type searcher struct {
	engine   *Engine
	target   Profile
	pool     []Genome
	multiset bool
	shared   *sharedBest
	best     BreedResult
	bestSize int
	tuples   int64
	pruned   int64
}

func newSearcher(e *Engine, target Profile, pool []Genome, shared *sharedBest) *searcher {
	return &searcher{
		engine:   e,
		target:   target,
		pool:     pool,
		multiset: e.Options.Multiset,
		shared:   shared,
		bestSize: noOutcomes,
	}
}

func searchSequential(ctx context.Context, e *Engine, target Profile, pool []Genome) BreedResult {
	var s = newSearcher(e, target, pool, nil)
	for i := range pool {
		if s.searchFirst(ctx, i) {
			break
		}
	}
	s.flush()
	return s.best
}

func (s *searcher) lowerBound(prev int) int {
	if s.multiset {
		return prev
	}
	return 0
}

// searchFirst searches every tuple whose first parent is pool[i].
// It returns true when the search is over: either a single outcome
// match was found or it was stopped.
func (s *searcher) searchFirst(ctx context.Context, i int) bool {
	var parents [Parents]Genome
	parents[0] = s.pool[i]
	for j := s.lowerBound(i); j < len(s.pool); j++ {
		if ctx.Err() != nil || s.shared.stopped(i) {
			return true
		}
		parents[1] = s.pool[j]
		for k := s.lowerBound(j); k < len(s.pool); k++ {
			parents[2] = s.pool[k]
			for l := s.lowerBound(k); l < len(s.pool); l++ {
				parents[3] = s.pool[l]
				if s.evaluate(&parents) {
					s.shared.onOptimal(i)
					return true
				}
			}
		}
		s.flush()
	}
	return false
}

// evaluate records parents if they beat the best so far. It returns
// true for a single outcome match, which cannot be improved.
func (s *searcher) evaluate(parents *[Parents]Genome) bool {
	s.tuples++
	var o = newOffspring(parents)
	var n = o.Count()
	if n >= s.bestSize || n > s.shared.bound() {
		s.pruned++
		return false
	}
	var child, found = o.FirstMatch(s.target)
	if !found {
		return false
	}
	s.best = BreedResult{
		Found:    true,
		Parents:  *parents,
		Child:    child,
		Outcomes: n,
	}
	s.bestSize = n
	s.shared.update(n)
	s.engine.onImprove(s.best)
	return n == 1
}

func (s *searcher) flush() {
	if s.tuples == 0 && s.pruned == 0 {
		return
	}
	s.engine.addTuples(s.tuples, s.pruned)
	s.tuples = 0
	s.pruned = 0
}
