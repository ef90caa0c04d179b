package main

import (
	"math/rand"

	"github.com/ChizhovVadim/GeneSolver/internal/pool"
)

func runGenerate(path string, size int, seed int64) error {
	logger.Println("generate started",
		"Path", path,
		"Size", size,
		"Seed", seed)
	defer logger.Println("generate finished")

	var r = rand.New(rand.NewSource(seed))
	return pool.SaveFile(path, pool.Random(r, size))
}
