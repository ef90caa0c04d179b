package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	. "github.com/ChizhovVadim/GeneSolver/pkg/common"
)

type Engine struct {
	Options      Options
	start        time.Time
	limits       *limitManager
	progress     func(SearchInfo)
	tuples       atomic.Int64
	pruned       atomic.Int64
	best         BreedResult
	lastProgress BreedResult
	mu           sync.Mutex
}

func NewEngine(options Options) *Engine {
	return &Engine{
		Options: options,
	}
}

func (e *Engine) Prepare() {
	if e.Options.Threads < 1 {
		e.Options.Threads = 1
	}
}

func (e *Engine) Clear() {
	e.tuples.Store(0)
	e.pruned.Store(0)
	e.best = BreedResult{}
	e.lastProgress = BreedResult{}
}

// Search looks for the combination of four pool members whose offspring
// contain a genome matching the target with the highest probability.
// A cancelled or limited search returns the best result found so far,
// with Err set to the reason.
func (e *Engine) Search(ctx context.Context, searchParams SearchParams) SearchInfo {
	e.start = time.Now()
	e.Prepare()
	e.Clear()
	e.progress = searchParams.Progress
	ctx, e.limits = newLimitManager(ctx, e.start, searchParams.Limits)
	defer e.limits.Close()

	var pool = searchParams.Pool.Genomes()
	if e.Options.Threads > 1 && len(pool) > 1 {
		e.best = searchParallel(ctx, e, searchParams.Target, pool)
	} else {
		e.best = searchSequential(ctx, e, searchParams.Target, pool)
	}

	var result = e.currentSearchResult()
	if ctx.Err() != nil {
		result.Err = context.Cause(ctx)
	}
	return result
}

func (e *Engine) currentSearchResult() SearchInfo {
	return SearchInfo{
		Result: e.best,
		Tuples: e.tuples.Load(),
		Pruned: e.pruned.Load(),
		Time:   time.Since(e.start),
	}
}

func (e *Engine) addTuples(tuples, pruned int64) {
	var total = e.tuples.Add(tuples)
	e.pruned.Add(pruned)
	e.limits.OnTuplesChanged(total)
}

// onImprove reports a better result found by one of the searchers.
func (e *Engine) onImprove(result BreedResult) {
	if e.progress == nil {
		return
	}
	if e.Options.Threads > 1 {
		e.mu.Lock()
		defer e.mu.Unlock()
	}
	if e.lastProgress.Found && e.lastProgress.Outcomes <= result.Outcomes {
		return
	}
	if e.tuples.Load() < int64(e.Options.ProgressMinTuples) && result.Outcomes != 1 {
		return
	}
	e.lastProgress = result
	var si = e.currentSearchResult()
	si.Result = result
	e.progress(si)
}

// Offspring lists every child the four parents can produce, in the
// order the search visits them.
func Offspring(parents [Parents]Genome) []Genome {
	var o = newOffspring(&parents)
	return o.Children()
}

// LocusOptions returns the alleles each locus of a child can take.
func LocusOptions(parents [Parents]Genome) [GenomeSize]AlleleSet {
	var o = newOffspring(&parents)
	return o.loci
}
