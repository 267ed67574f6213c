// Copyright (c) 2025 BVK Chaitanya

// Package cli implements a minimalistic command-line parsing functionality
// using the standard library's flag.FlagSets.
//
// Users can define commands and group them into subcommands of arbitrary
// depths. Special commands "help" and "commands" are recognized at every
// level for documentation.
//
// # OPTIONAL INTERFACES
//
// Commands can implement `interface{ Purpose() string }` to provide a short
// one-line description and `interface{ Description() string }` to provide a
// more detailed multi-paragraph documentation.
package cli

import (
	"context"
	"flag"
	"os"
	"path/filepath"
)

// CmdFunc defines the signature for command execution functions.
type CmdFunc func(ctx context.Context, args []string) error

// Command interface defines the requirements for Command implementations.
type Command interface {
	// Command returns the command name, the command-line flags, and the
	// execution function for a command or subcommand. The returned
	// flag.FlagSet must be non-nil.
	Command() (string, *flag.FlagSet, CmdFunc)
}

// Group collects a list of commands as subcommands under a parent command
// with the given name.
func Group(name, purpose string, cmds ...Command) Command {
	return &cmdGroup{
		name:    name,
		purpose: purpose,
		subcmds: cmds,
	}
}

// Run resolves `args` into a command from `cmds` (descending through command
// groups as necessary), parses the remaining arguments into the command's
// flags, and executes the command.
func Run(ctx context.Context, cmds []Command, args []string) error {
	if len(cmds) == 0 {
		return os.ErrInvalid
	}
	root := &cmdGroup{
		name:    filepath.Base(os.Args[0]),
		subcmds: cmds,
	}
	return root.run(ctx, args)
}

func getPurpose(c Command) string {
	if v, ok := c.(interface{ Purpose() string }); ok {
		return v.Purpose()
	}
	return ""
}

func getDescription(c Command) string {
	if v, ok := c.(interface{ Description() string }); ok {
		return v.Description()
	}
	return ""
}

func numFlags(fset *flag.FlagSet) int {
	n := 0
	fset.VisitAll(func(*flag.Flag) { n++ })
	return n
}
