// Copyright (c) 2025 BVK Chaitanya

package exchange

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/bvk/binbot/cli"
	"github.com/bvk/binbot/subcmds/cmdutil"
)

type GetTime struct {
	cmdutil.ClientFlags
}

func (c *GetTime) Purpose() string {
	return "Prints the exchange server time and the local clock skew"
}

func (c *GetTime) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("get-time", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	return "get-time", fset, cli.CmdFunc(c.run)
}

func (c *GetTime) run(ctx context.Context, args []string) error {
	exch, err := c.Exchange(ctx)
	if err != nil {
		return err
	}
	defer exch.Close()

	serverTime, err := exch.GetServerTime(ctx)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	fmt.Printf("server time: %s\n", serverTime.Format(time.RFC3339Nano))
	fmt.Printf("local time:  %s\n", now.Format(time.RFC3339Nano))
	fmt.Printf("skew:        %s\n", now.Sub(serverTime))
	return nil
}
