// Copyright (c) 2025 BVK Chaitanya

package cli

import (
	"fmt"
	"io"
	"strings"
)

func getUsage(cmdpath []Command) string {
	var words []string
	for _, c := range cmdpath {
		name, _, _ := c.Command()
		words = append(words, name)
	}
	last := cmdpath[len(cmdpath)-1]
	if _, fset, _ := last.Command(); numFlags(fset) > 0 {
		words = append(words, "<flags>")
	}
	if _, ok := last.(*cmdGroup); ok {
		words = append(words, "<subcommand>")
	}
	words = append(words, "<args>")
	return strings.Join(words, " ")
}

// printHelp writes documentation for the command at the end of cmdpath. When
// extra names are given after "help", they are resolved as further
// subcommands of the last command group.
func printHelp(w io.Writer, cmdpath []Command, extra []string) error {
	last := cmdpath[len(cmdpath)-1]
	for _, name := range extra {
		g, ok := last.(*cmdGroup)
		if !ok {
			break
		}
		sub, ok := g.find(name)
		if !ok {
			return fmt.Errorf("command not defined: %s", name)
		}
		cmdpath = append(cmdpath, sub)
		last = sub
	}

	fmt.Fprintf(w, "Usage: %s\n", getUsage(cmdpath))

	if purpose := getPurpose(last); len(purpose) > 0 {
		fmt.Fprintf(w, "\n%s\n", purpose)
	}
	if desc := getDescription(last); len(desc) > 0 {
		fmt.Fprintf(w, "%s\n", strings.TrimRight(desc, "\n"))
	}

	if g, ok := last.(*cmdGroup); ok {
		fmt.Fprintf(w, "\nSubcommands:\n")
		if err := g.printCommands(w); err != nil {
			return err
		}
	}

	if _, fset, _ := last.Command(); numFlags(fset) > 0 {
		fmt.Fprintf(w, "\nFlags:\n")
		fset.SetOutput(w)
		fset.PrintDefaults()
	}
	return nil
}
