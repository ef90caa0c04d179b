package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/ChizhovVadim/GeneSolver/internal/pool"
	"github.com/ChizhovVadim/GeneSolver/pkg/common"
	"github.com/ChizhovVadim/GeneSolver/pkg/engine"
	"github.com/ChizhovVadim/GeneSolver/pkg/protocol"

	"github.com/google/uuid"
)

const (
	name   = "GeneSolver"
	author = "Vadim Chizhov"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

var (
	flgG, flgY, flgH, flgW, flgX int
	flgTarget                    string
	flgPlants                    string
	flgThreads                   int
	flgMultiset                  bool
	flgTime                      int
	flgTuples                    int64
	flgProtocol                  bool
)

func main() {
	flag.IntVar(&flgG, "g", 0, "number of G genes in target")
	flag.IntVar(&flgY, "y", 0, "number of Y genes in target")
	flag.IntVar(&flgH, "h", 0, "number of H genes in target")
	flag.IntVar(&flgW, "w", 0, "number of W genes in target")
	flag.IntVar(&flgX, "x", 0, "number of X genes in target")
	flag.StringVar(&flgTarget, "target", "", "target as letters (GGGWWW) or five counts; overrides -g..-x")
	flag.StringVar(&flgPlants, "plants", "", "comma separated plant files, one genome per line")
	flag.IntVar(&flgThreads, "threads", 1, "search threads")
	flag.BoolVar(&flgMultiset, "multiset", false, "skip reordered parent tuples")
	flag.IntVar(&flgTime, "time", 0, "search time limit in milliseconds")
	flag.Int64Var(&flgTuples, "tuples", 0, "limit on evaluated parent tuples")
	flag.BoolVar(&flgProtocol, "protocol", false, "read commands from stdin")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	logger.Println(name,
		"VersionName", versionName,
		"BuildDate", buildDate,
		"GitRevision", gitRevision,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
		"NumCPU", runtime.NumCPU(),
	)

	var options = engine.NewOptions()
	options.Threads = flgThreads
	options.Multiset = flgMultiset
	var eng = engine.NewEngine(options)

	if flgProtocol {
		var proto = protocol.New(name, author, versionName, eng,
			[]protocol.Option{
				&protocol.IntOption{Name: "Threads", Min: 1, Max: runtime.NumCPU(), Value: &eng.Options.Threads},
				&protocol.BoolOption{Name: "Multiset", Value: &eng.Options.Multiset},
				&protocol.IntOption{Name: "ProgressMinTuples", Min: 0, Max: 1 << 30, Value: &eng.Options.ProgressMinTuples},
			},
		)
		proto.Run(logger, os.Stdin, os.Stdout)
		return
	}

	var err = run(logger, eng)
	if err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

func run(logger *log.Logger, eng *engine.Engine) error {
	var target, err = parseTarget()
	if err != nil {
		return err
	}
	if flgPlants == "" {
		return errors.New("no plant files, use -plants")
	}
	plants, err := pool.LoadFiles(context.Background(), strings.Split(flgPlants, ","))
	if err != nil {
		return err
	}

	var runID = uuid.New().String()
	logger.Println("search started",
		"RunID", runID,
		"Target", target,
		"Plants", plants.Len(),
		"Threads", eng.Options.Threads,
		"Multiset", eng.Options.Multiset)

	var si = eng.Search(context.Background(), common.SearchParams{
		Target: target,
		Pool:   plants,
		Limits: common.LimitsType{SearchTime: flgTime, Tuples: flgTuples},
		Progress: func(si common.SearchInfo) {
			logger.Println("improved",
				"RunID", runID,
				"Outcomes", si.Result.Outcomes,
				"Child", si.Result.Child,
				"Tuples", si.Tuples)
		},
	})

	logger.Println("search finished",
		"RunID", runID,
		"Tuples", si.Tuples,
		"Pruned", si.Pruned,
		"Time", si.Time)
	if si.Err != nil {
		logger.Println("search stopped early, result may not be optimal", "Err", si.Err)
	}

	fmt.Println(common.FormatReport(si.Result))
	return nil
}

func parseTarget() (common.Profile, error) {
	if flgTarget != "" {
		return common.ParseProfile(flgTarget)
	}
	return common.NewProfile(flgG, flgY, flgH, flgW, flgX)
}
