package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/ChizhovVadim/GeneSolver/internal/pool"
	"github.com/ChizhovVadim/GeneSolver/pkg/common"
	"github.com/ChizhovVadim/GeneSolver/pkg/engine"
)

type benchmarkMode struct {
	name     string
	threads  int
	multiset bool
}

func runBenchmark(size int, seed int64, runs int, threads int, multiset bool) error {
	logger.Println("benchmark started",
		"Size", size,
		"Seed", seed,
		"Runs", runs,
		"Threads", threads,
		"Multiset", multiset)
	defer logger.Println("benchmark finished")

	var modes = []benchmarkMode{
		{name: "ordered", threads: 1},
	}
	if multiset {
		modes = append(modes, benchmarkMode{name: "multiset", threads: 1, multiset: true})
	}
	modes = append(modes, benchmarkMode{name: "parallel", threads: threads})

	var r = rand.New(rand.NewSource(seed))
	var problems = make([]common.SearchParams, runs)
	for i := range problems {
		var plants = pool.Random(r, size)
		problems[i] = common.SearchParams{
			Target: plants.At(r.Intn(plants.Len())).Counts(),
			Pool:   plants,
		}
	}

	for _, mode := range modes {
		var options = engine.NewOptions()
		options.Threads = mode.threads
		options.Multiset = mode.multiset
		var eng = engine.NewEngine(options)
		benchmark(mode.name, problems, eng)
	}
	return nil
}

func benchmark(name string, problems []common.SearchParams, eng *engine.Engine) {
	var ctx = context.Background()
	var start = time.Now()
	var tuples, pruned int64
	var found = 0
	for _, problem := range problems {
		var si = eng.Search(ctx, problem)
		tuples += si.Tuples
		pruned += si.Pruned
		if si.Result.Found {
			found++
		}
	}
	var elapsed = time.Since(start)
	fmt.Println("Mode", name)
	fmt.Println("Time", elapsed)
	fmt.Println("Tuples", tuples)
	fmt.Println("Pruned", pruned)
	fmt.Println("Solved", found, "of", len(problems))
	fmt.Println("kTPS", tuples/(elapsed.Milliseconds()+1))
}
