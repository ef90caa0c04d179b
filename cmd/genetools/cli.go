package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// CommandArgs holds "tool command -key value ..." arguments.
type CommandArgs struct {
	commandName string
	params      map[string]string
}

func NewCommandArgs(args []string) *CommandArgs {
	var cmdName = ""
	var flags = make(map[string]string)
	for i := 1; i < len(args); i++ {
		var arg = args[i]
		if strings.HasPrefix(arg, "-") {
			if i < len(args)-1 {
				var k = strings.TrimPrefix(arg, "-")
				flags[k] = args[i+1]
				i++
			}
		} else if cmdName == "" {
			cmdName = arg
		}
	}
	return &CommandArgs{
		commandName: cmdName,
		params:      flags,
	}
}

func (ca *CommandArgs) CommandName() string {
	return ca.commandName
}

func (ca *CommandArgs) GetString(name string, defaultVal string) string {
	var val, ok = ca.params[name]
	if !ok {
		return defaultVal
	}
	return val
}

func (ca *CommandArgs) GetInt(name string, defaultVal int) int {
	var val, ok = ca.params[name]
	if !ok {
		return defaultVal
	}
	var v, err = strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return v
}

func (ca *CommandArgs) GetBool(name string, defaultVal bool) bool {
	var val, ok = ca.params[name]
	if !ok {
		return defaultVal
	}
	var v, err = strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return v
}

type Cli struct {
	args  *CommandArgs
	items map[string]func() error
}

func NewCli() *Cli {
	return newCli(os.Args)
}

func newCli(args []string) *Cli {
	return &Cli{
		args:  NewCommandArgs(args),
		items: make(map[string]func() error),
	}
}

func (cli *Cli) Params() *CommandArgs {
	return cli.args
}

func (cli *Cli) AddCommand(name string, handler func() error) {
	cli.items[name] = handler
}

func (cli *Cli) Execute() error {
	var commandName = cli.args.CommandName()
	handler, found := cli.items[commandName]
	if !found {
		var names = make([]string, 0, len(cli.items))
		for name := range cli.items {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("command not found %q, available: %v", commandName, strings.Join(names, ", "))
	}
	return handler()
}
