// Copyright (c) 2025 BVK Chaitanya

package exchange

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/bvk/binbot/cli"
	"github.com/bvk/binbot/subcmds/cmdutil"
)

type GetPrice struct {
	cmdutil.ClientFlags
}

func (c *GetPrice) Purpose() string {
	return "Prints the latest price for one or more symbols"
}

func (c *GetPrice) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("get-price", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	return "get-price", fset, cli.CmdFunc(c.run)
}

func (c *GetPrice) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("needs one or more symbol arguments")
	}

	exch, err := c.Exchange(ctx)
	if err != nil {
		return err
	}
	defer exch.Close()

	for _, arg := range args {
		symbol := strings.ToUpper(arg)
		price, err := exch.GetPrice(ctx, symbol)
		if err != nil {
			fmt.Printf("%s: %v\n", symbol, err)
			continue
		}
		fmt.Printf("%s: %s\n", symbol, price)
	}
	return nil
}
