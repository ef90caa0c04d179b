package main

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

func main() {
	var err = run()
	if err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

func run() error {
	var (
		poolPath = mapPath("~/genes/pool.txt")
		poolSize = 20
		seed     = 1
	)

	var cli = NewCli()
	cli.AddCommand("generate", func() error {
		var path = mapPath(cli.Params().GetString("out", poolPath))
		var size = cli.Params().GetInt("size", poolSize)
		var seed = cli.Params().GetInt("seed", seed)
		return runGenerate(path, size, int64(seed))
	})
	cli.AddCommand("benchmark", func() error {
		var size = cli.Params().GetInt("size", poolSize)
		var seed = cli.Params().GetInt("seed", seed)
		var runs = cli.Params().GetInt("runs", 3)
		var threads = cli.Params().GetInt("threads", 4)
		var multiset = cli.Params().GetBool("multiset", true)
		return runBenchmark(size, int64(seed), runs, threads, multiset)
	})
	return cli.Execute()
}
