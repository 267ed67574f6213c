// Copyright (c) 2025 BVK Chaitanya

package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
)

type cmdGroup struct {
	name    string
	purpose string
	subcmds []Command
}

var specialCmds = []string{"help", "commands"}

// Command implements the Command interface. Groups carry no flags and no
// execution function of their own.
func (cg *cmdGroup) Command() (string, *flag.FlagSet, CmdFunc) {
	return cg.name, flag.NewFlagSet(cg.name, flag.ContinueOnError), nil
}

func (cg *cmdGroup) Purpose() string {
	return cg.purpose
}

func (cg *cmdGroup) find(name string) (Command, bool) {
	for _, c := range cg.subcmds {
		if n, _, _ := c.Command(); n == name {
			return c, true
		}
	}
	return nil, false
}

// resolve descends through subcommand names in args until a non-group
// command or a special command is found. It returns the path of commands
// from the root group to the resolved command and the unconsumed arguments.
func (cg *cmdGroup) resolve(args []string) ([]Command, []string, error) {
	cmdpath := []Command{cg}
	group := cg
	for len(args) > 0 {
		name := args[0]
		if slices.Contains(specialCmds, name) {
			return cmdpath, args, nil
		}
		sub, ok := group.find(name)
		if !ok {
			return nil, nil, fmt.Errorf("command not defined: %s", name)
		}
		cmdpath = append(cmdpath, sub)
		args = args[1:]
		sg, ok := sub.(*cmdGroup)
		if !ok {
			return cmdpath, args, nil
		}
		group = sg
	}
	return cmdpath, args, nil
}

func (cg *cmdGroup) run(ctx context.Context, args []string) error {
	cmdpath, args, err := cg.resolve(args)
	if err != nil {
		return err
	}

	if len(args) > 0 && slices.Contains(specialCmds, args[0]) {
		last := cmdpath[len(cmdpath)-1]
		switch args[0] {
		case "help":
			return printHelp(os.Stderr, cmdpath, args[1:])
		case "commands":
			if g, ok := last.(*cmdGroup); ok {
				return g.printCommands(os.Stderr)
			}
			return printHelp(os.Stderr, cmdpath, nil)
		}
	}

	last := cmdpath[len(cmdpath)-1]
	_, fset, fun := last.Command()
	if fun == nil {
		return printHelp(os.Stderr, cmdpath, nil)
	}

	fset.SetOutput(os.Stderr)
	if err := fset.Parse(args); err != nil {
		return err
	}
	return fun(ctx, fset.Args())
}

func (cg *cmdGroup) printCommands(w io.Writer) error {
	for _, sub := range cg.subcmds {
		name, _, _ := sub.Command()
		if purpose := getPurpose(sub); len(purpose) > 0 {
			fmt.Fprintf(w, "\t%-15s  %s\n", name, purpose)
		} else {
			fmt.Fprintf(w, "\t%-15s\n", name)
		}
	}
	return nil
}
