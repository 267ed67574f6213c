// Copyright (c) 2025 BVK Chaitanya

package order

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/bvk/binbot/cli"
	"github.com/bvk/binbot/subcmds/cmdutil"
)

type Get struct {
	cmdutil.ClientFlags

	symbol  string
	orderID int64
}

func (c *Get) Purpose() string {
	return "Fetches an order from the exchange"
}

func (c *Get) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("get", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	fset.StringVar(&c.symbol, "symbol", "", "trading pair, eg. BTCUSDT")
	fset.Int64Var(&c.orderID, "order-id", 0, "exchange order id")
	return "get", fset, cli.CmdFunc(c.run)
}

func (c *Get) run(ctx context.Context, args []string) error {
	if len(c.symbol) == 0 {
		return fmt.Errorf("-symbol flag is required")
	}
	if c.orderID == 0 {
		return fmt.Errorf("-order-id flag is required")
	}

	exch, err := c.Exchange(ctx)
	if err != nil {
		return err
	}
	defer exch.Close()

	order, err := exch.GetOrder(ctx, c.symbol, c.orderID)
	if err != nil {
		return err
	}
	js, err := json.MarshalIndent(order, "", "  ")
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", js)
	return nil
}
