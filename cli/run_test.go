// Copyright (c) 2025 BVK Chaitanya

package cli

import (
	"context"
	"flag"
	"testing"
)

type TestCmd struct {
	name  string
	flags *flag.FlagSet
	args  []string
}

func newTestCmd(name string) *TestCmd {
	return &TestCmd{
		name:  name,
		flags: flag.NewFlagSet(name, flag.ContinueOnError),
	}
}

func (t *TestCmd) Command() (string, *flag.FlagSet, CmdFunc) {
	return t.name, t.flags, CmdFunc(func(_ context.Context, args []string) error {
		t.args = args
		return nil
	})
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	place := newTestCmd("place")
	symbol := place.flags.String("symbol", "", "trading pair")
	orderList := newTestCmd("list")
	orderList.flags.String("format", "json", "list output format")
	order := Group("order", "Manage orders", place, orderList)

	getPrice := newTestCmd("get-price")
	exchange := Group("exchange", "Query the exchange", getPrice)

	cmds := []Command{order, exchange}

	{
		args := []string{"order", "place", "-symbol", "BTCUSDT", "extra-arg"}
		if err := Run(ctx, cmds, args); err != nil {
			t.Fatal(err)
		}
		if *symbol != "BTCUSDT" {
			t.Fatalf("want BTCUSDT, got %q", *symbol)
		}
		if len(place.args) != 1 || place.args[0] != "extra-arg" {
			t.Fatalf("want `extra-arg`, got %v", place.args)
		}
	}

	{
		args := []string{"exchange", "get-price", "ETHUSDT"}
		if err := Run(ctx, cmds, args); err != nil {
			t.Fatal(err)
		}
		if len(getPrice.args) != 1 || getPrice.args[0] != "ETHUSDT" {
			t.Fatalf("want `ETHUSDT`, got %v", getPrice.args)
		}
	}

	{
		args := []string{"order", "unknown-cmd"}
		if err := Run(ctx, cmds, args); err == nil {
			t.Fatalf("want error for undefined command, got nil")
		}
	}
}
