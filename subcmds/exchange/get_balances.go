// Copyright (c) 2025 BVK Chaitanya

package exchange

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/binbot/cli"
	"github.com/bvk/binbot/subcmds/cmdutil"
)

type GetBalances struct {
	cmdutil.ClientFlags
}

func (c *GetBalances) Purpose() string {
	return "Prints non-zero balances in the futures account"
}

func (c *GetBalances) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("get-balances", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	return "get-balances", fset, cli.CmdFunc(c.run)
}

func (c *GetBalances) run(ctx context.Context, args []string) error {
	exch, err := c.Exchange(ctx)
	if err != nil {
		return err
	}
	defer exch.Close()

	balances, err := exch.GetBalances(ctx)
	if err != nil {
		return err
	}
	if len(balances) == 0 {
		fmt.Printf("no balances\n")
		return nil
	}
	for _, b := range balances {
		fmt.Printf("%s: wallet=%s available=%s unrealized=%s\n",
			b.Asset, b.WalletBalance, b.AvailableBalance, b.UnrealizedProfit)
	}
	return nil
}
