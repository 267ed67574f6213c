// Copyright (c) 2025 BVK Chaitanya

package order

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/bvk/binbot/cli"
	"github.com/bvk/binbot/subcmds/cmdutil"
	"github.com/bvk/binbot/trader"
)

type List struct {
	cmdutil.DBFlags

	verbose bool
}

func (c *List) Purpose() string {
	return "Lists order attempts recorded in the datastore"
}

func (c *List) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("list", flag.ContinueOnError)
	c.DBFlags.SetFlags(fset)
	fset.BoolVar(&c.verbose, "v", false, "print full order records as json")
	return "list", fset, cli.CmdFunc(c.run)
}

func (c *List) run(ctx context.Context, args []string) error {
	db, closer, err := c.GetDatabase(ctx)
	if err != nil {
		return err
	}
	defer closer()
	if db == nil {
		return fmt.Errorf("datastore is disabled")
	}

	return trader.ScanOrders(ctx, db, func(key string, record *trader.OrderRecord) error {
		if c.verbose {
			js, err := json.MarshalIndent(record, "", "  ")
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", js)
			return nil
		}
		at := record.CreateTime.Format("2006-01-02 15:04:05")
		req := record.Request
		if record.Success {
			fmt.Printf("%s %s %s %s qty=%s order-id=%d status=%s\n", at,
				req.Symbol, req.Side, req.Type, req.Quantity,
				record.Order.OrderID, record.Order.Status)
			return nil
		}
		fmt.Printf("%s %s %s %s qty=%s FAILED %s: %s\n", at,
			req.Symbol, req.Side, req.Type, req.Quantity,
			record.Kind, record.Message)
		return nil
	})
}
