// Copyright (c) 2025 BVK Chaitanya

package order

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/binbot/cli"
	"github.com/bvk/binbot/subcmds/cmdutil"
)

type Cancel struct {
	cmdutil.ClientFlags

	symbol  string
	orderID int64
}

func (c *Cancel) Purpose() string {
	return "Cancels an open order on the exchange"
}

func (c *Cancel) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("cancel", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	fset.StringVar(&c.symbol, "symbol", "", "trading pair, eg. BTCUSDT")
	fset.Int64Var(&c.orderID, "order-id", 0, "exchange order id")
	return "cancel", fset, cli.CmdFunc(c.run)
}

func (c *Cancel) run(ctx context.Context, args []string) error {
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

	order, err := exch.CancelOrder(ctx, c.symbol, c.orderID)
	if err != nil {
		return err
	}
	fmt.Printf("canceled order %d with status %s\n", order.OrderID, order.Status)
	return nil
}
