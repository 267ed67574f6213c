// Copyright (c) 2025 BVK Chaitanya

package exchange

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/bvk/binbot/cli"
	"github.com/bvk/binbot/subcmds/cmdutil"
)

type GetInfo struct {
	cmdutil.ClientFlags
}

func (c *GetInfo) Purpose() string {
	return "Prints tradable products and their precisions"
}

func (c *GetInfo) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("get-info", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	return "get-info", fset, cli.CmdFunc(c.run)
}

func (c *GetInfo) run(ctx context.Context, args []string) error {
	exch, err := c.Exchange(ctx)
	if err != nil {
		return err
	}
	defer exch.Close()

	infos, err := exch.GetSymbols(ctx)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		for _, info := range infos {
			fmt.Printf("%s %s base=%s quote=%s price-precision=%d qty-precision=%d\n",
				info.Symbol, info.Status, info.BaseAsset, info.QuoteAsset,
				info.PricePrecision, info.QuantityPrecision)
		}
		return nil
	}

	for _, arg := range args {
		symbol := strings.ToUpper(arg)
		found := false
		for _, info := range infos {
			if info.Symbol == symbol {
				js, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", js)
				found = true
				break
			}
		}
		if !found {
			fmt.Printf("%s: not found\n", symbol)
		}
	}
	return nil
}
