package protocol

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/ChizhovVadim/GeneSolver/pkg/common"
	"github.com/ChizhovVadim/GeneSolver/pkg/engine"

	"github.com/google/uuid"
)

type Engine interface {
	Prepare()
	Clear()
	Search(ctx context.Context, searchParams common.SearchParams) common.SearchInfo
}

type Protocol struct {
	name         string
	author       string
	version      string
	options      []Option
	engine       Engine
	target       common.Profile
	targetSet    bool
	pool         *common.Pool
	out          io.Writer
	logger       *log.Logger
	thinking     bool
	engineOutput chan common.SearchInfo
	cancel       context.CancelFunc
}

func New(name, author, version string, eng Engine, options []Option) *Protocol {
	return &Protocol{
		name:    name,
		author:  author,
		version: version,
		engine:  eng,
		options: options,
		pool:    common.NewPool(),
	}
}

// Run reads commands from in until "quit" or end of input. On "quit" a
// running search is stopped, at end of input it is allowed to finish;
// either way its result is printed before Run returns.
func (p *Protocol) Run(logger *log.Logger, in io.Reader, out io.Writer) {
	p.logger = logger
	p.out = out

	var commands = make(chan string)

	go func() {
		defer close(commands)
		readCommands(in, commands)
	}()

	var searchResult common.SearchInfo
	for {
		select {
		case si, ok := <-p.engineOutput:
			if ok {
				fmt.Fprintln(p.out, searchInfoToString(si))
				searchResult = si
			} else {
				p.onSearchFinished(searchResult)
				searchResult = common.SearchInfo{}
				if commands == nil {
					return
				}
			}
		case commandLine, ok := <-commands:
			if !ok {
				// end of input: a running search is allowed to finish
				if !p.thinking {
					return
				}
				commands = nil
				continue
			}
			if commandLine == "quit" {
				if !p.thinking {
					return
				}
				p.cancel()
				commands = nil
				continue
			}
			var err = p.handle(commandLine)
			if err != nil {
				logger.Println(err)
			}
		}
	}
}

func readCommands(in io.Reader, commands chan<- string) {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = strings.TrimSpace(scanner.Text())
		if commandLine != "" {
			commands <- commandLine
		}
		if commandLine == "quit" {
			return
		}
	}
}

func (p *Protocol) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	if p.thinking {
		if commandName == "stop" {
			p.cancel()
			return nil
		}
		return errors.New("search still run")
	}

	var h func(fields []string) error

	switch commandName {
	case "gsi":
		h = p.gsiCommand
	case "setoption":
		h = p.setOptionCommand
	case "isready":
		h = p.isReadyCommand
	case "target":
		h = p.targetCommand
	case "plant":
		h = p.plantCommand
	case "clearplants":
		h = p.clearPlantsCommand
	case "breed":
		h = p.breedCommand
	case "go":
		h = p.goCommand
	case "newsearch":
		h = p.newSearchCommand
	}

	if h == nil {
		return fmt.Errorf("command not found %v", commandName)
	}

	return h(fields)
}

func (p *Protocol) gsiCommand(fields []string) error {
	fmt.Fprintf(p.out, "id name %s %s\n", p.name, p.version)
	fmt.Fprintf(p.out, "id author %s\n", p.author)
	for _, option := range p.options {
		fmt.Fprintln(p.out, option.OptionString())
	}
	fmt.Fprintln(p.out, "gsiok")
	return nil
}

func (p *Protocol) setOptionCommand(fields []string) error {
	if len(fields) < 4 || fields[0] != "name" || fields[2] != "value" {
		return errors.New("invalid setoption arguments")
	}
	var name, value = fields[1], fields[3]
	for _, option := range p.options {
		if strings.EqualFold(option.OptionName(), name) {
			return option.Set(value)
		}
	}
	return fmt.Errorf("unhandled option %v", name)
}

func (p *Protocol) isReadyCommand(fields []string) error {
	p.engine.Prepare()
	fmt.Fprintln(p.out, "readyok")
	return nil
}

func (p *Protocol) targetCommand(fields []string) error {
	var target, err = common.ParseProfile(strings.Join(fields, " "))
	if err != nil {
		return err
	}
	p.target = target
	p.targetSet = true
	return nil
}

func (p *Protocol) plantCommand(fields []string) error {
	if len(fields) == 0 {
		return errors.New("plant: no genomes")
	}
	var genomes = make([]common.Genome, 0, len(fields))
	for _, field := range fields {
		var g, err = common.ParseGenome(field)
		if err != nil {
			return err
		}
		genomes = append(genomes, g)
	}
	for _, g := range genomes {
		p.pool.Add(g)
	}
	fmt.Fprintf(p.out, "plants %v\n", p.pool.Len())
	return nil
}

func (p *Protocol) clearPlantsCommand(fields []string) error {
	p.pool.Clear()
	return nil
}

// breedCommand shows what four given parents produce without searching.
func (p *Protocol) breedCommand(fields []string) error {
	if len(fields) != common.Parents {
		return fmt.Errorf("breed: want %v genomes, got %v", common.Parents, len(fields))
	}
	var parents [common.Parents]common.Genome
	for i, field := range fields {
		var g, err = common.ParseGenome(field)
		if err != nil {
			return err
		}
		parents[i] = g
	}
	var sb = &strings.Builder{}
	sb.WriteString("loci")
	for _, set := range engine.LocusOptions(parents) {
		sb.WriteString(" ")
		sb.WriteString(set.String())
	}
	var children = engine.Offspring(parents)
	fmt.Fprintf(sb, " outcomes %v", len(children))
	if p.targetSet {
		for _, child := range children {
			if p.target.Matches(child) {
				fmt.Fprintf(sb, " match %v", child)
				break
			}
		}
	}
	fmt.Fprintln(p.out, sb.String())
	return nil
}

func (p *Protocol) goCommand(fields []string) error {
	if !p.targetSet {
		return errors.New("go: no target")
	}
	var limits, err = parseLimits(fields)
	if err != nil {
		return err
	}
	var runID = uuid.New().String()
	var params = common.SearchParams{
		Target: p.target,
		Pool:   common.NewPool(p.pool.Genomes()...),
		Limits: limits,
	}
	p.logger.Println("search started",
		"RunID", runID,
		"Target", params.Target,
		"Plants", params.Pool.Len())

	var ctx, cancel = context.WithCancel(context.Background())
	p.cancel = cancel
	p.thinking = true
	var output = make(chan common.SearchInfo, 3)
	p.engineOutput = output
	params.Progress = func(si common.SearchInfo) {
		select {
		case output <- si:
		default:
		}
	}
	go func() {
		defer cancel()
		var searchResult = p.engine.Search(ctx, params)
		p.logger.Println("search finished",
			"RunID", runID,
			"Tuples", searchResult.Tuples,
			"Time", searchResult.Time,
			"Err", searchResult.Err)
		output <- searchResult
		close(output)
	}()
	return nil
}

func (p *Protocol) newSearchCommand(fields []string) error {
	p.engine.Clear()
	return nil
}

func (p *Protocol) onSearchFinished(si common.SearchInfo) {
	fmt.Fprintln(p.out, common.FormatReport(si.Result))
	var r = si.Result
	if r.Found {
		fmt.Fprintf(p.out, "bestcombo %v %v %v %v child %v prob %.2f\n",
			r.Parents[0], r.Parents[1], r.Parents[2], r.Parents[3], r.Child, r.Probability())
	} else {
		fmt.Fprintln(p.out, "bestcombo none")
	}
	p.thinking = false
	p.cancel = nil
	p.engineOutput = nil
}

func searchInfoToString(si common.SearchInfo) string {
	var sb = &strings.Builder{}
	var timeMs = si.Time.Milliseconds()
	var tps = si.Tuples * 1000 / (timeMs + 1)
	fmt.Fprintf(sb, "info tuples %v pruned %v time %v tps %v", si.Tuples, si.Pruned, timeMs, tps)
	if si.Result.Found {
		fmt.Fprintf(sb, " outcomes %v prob %.2f child %v",
			si.Result.Outcomes, si.Result.Probability(), si.Result.Child)
	}
	return sb.String()
}

func parseLimits(args []string) (result common.LimitsType, err error) {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "time", "tuples":
			if i+1 >= len(args) {
				return result, fmt.Errorf("go: missing value for %v", args[i])
			}
			var v, perr = strconv.ParseInt(args[i+1], 10, 64)
			if perr != nil {
				return result, fmt.Errorf("go: %v: %w", args[i], perr)
			}
			if args[i] == "time" {
				result.SearchTime = int(v)
			} else {
				result.Tuples = v
			}
			i++
		case "infinite":
			result = common.LimitsType{}
		default:
			return result, fmt.Errorf("go: unknown limit %v", args[i])
		}
	}
	return result, nil
}
