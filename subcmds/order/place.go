// Copyright (c) 2025 BVK Chaitanya

package order

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/binbot/cli"
	"github.com/bvk/binbot/subcmds/cmdutil"
	"github.com/bvk/binbot/trader"
)

type Place struct {
	cmdutil.DBFlags

	symbol    string
	side      string
	orderType string
	quantity  string
	price     string
	stopPrice string
}

func (c *Place) Purpose() string {
	return "Places a futures order on the exchange"
}

func (c *Place) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("place", flag.ContinueOnError)
	c.DBFlags.SetFlags(fset)
	fset.StringVar(&c.symbol, "symbol", "", "trading pair, eg. BTCUSDT")
	fset.StringVar(&c.side, "side", "", "order side, BUY or SELL")
	fset.StringVar(&c.orderType, "type", "", "order type, MARKET, LIMIT or STOP_MARKET")
	fset.StringVar(&c.quantity, "quantity", "", "order quantity in the base asset")
	fset.StringVar(&c.price, "price", "", "limit price, only for LIMIT orders")
	fset.StringVar(&c.stopPrice, "stop-price", "", "trigger price, only for STOP_MARKET orders")
	return "place", fset, cli.CmdFunc(c.run)
}

func (c *Place) Description() string {
	return `

Command "place" validates the order parameters and submits a single order to
the exchange. Orders are placed in one-way position mode. Orders are never
retried automatically; a failed or timed-out attempt must be inspected with
"binbot order get" before trying again.

  $ binbot order place -symbol BTCUSDT -side BUY -type MARKET -quantity 0.01
  $ binbot order place -symbol BTCUSDT -side SELL -type LIMIT -quantity 0.01 -price 64000.5
  $ binbot order place -symbol BTCUSDT -side SELL -type STOP_MARKET -quantity 0.01 -stop-price 59000

`
}

func (c *Place) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("place takes no positional arguments")
	}

	req, err := trader.Validate(c.symbol, c.side, c.orderType, c.quantity, c.price, c.stopPrice)
	if err != nil {
		return err
	}
	return placeOrder(ctx, &c.DBFlags, req)
}

// placeOrder runs a validated order through the trader and prints the
// outcome. Shared with the wizard subcommand.
func placeOrder(ctx context.Context, flags *cmdutil.DBFlags, req *trader.OrderRequest) error {
	exch, err := flags.Exchange(ctx)
	if err != nil {
		return err
	}
	defer exch.Close()

	db, closer, err := flags.GetDatabase(ctx)
	if err != nil {
		return err
	}
	defer closer()

	tg, err := flags.Notifier(ctx)
	if err != nil {
		return err
	}
	var notifier trader.Notifier
	if tg != nil {
		notifier = tg
	}

	t := trader.NewTrader(exch, db, notifier)
	result := t.PlaceOrder(ctx, req)
	printResult(result)
	if !result.Success {
		return fmt.Errorf("order was not placed")
	}
	return nil
}

func printResult(result *trader.OrderResult) {
	if result.Success {
		order := result.Order
		fmt.Printf("Order placed successfully\n")
		fmt.Printf("  Order ID:      %d\n", order.OrderID)
		fmt.Printf("  Client ID:     %s\n", order.ClientOrderID)
		fmt.Printf("  Symbol:        %s\n", order.Symbol)
		fmt.Printf("  Side:          %s\n", order.Side)
		fmt.Printf("  Type:          %s\n", order.Type)
		fmt.Printf("  Status:        %s\n", order.Status)
		fmt.Printf("  Requested Qty: %s\n", order.Quantity)
		fmt.Printf("  Executed Qty:  %s\n", order.ExecutedQty)
		if !order.Price.IsZero() {
			fmt.Printf("  Price:         %s\n", order.Price)
		}
		if !order.StopPrice.IsZero() {
			fmt.Printf("  Stop Price:    %s\n", order.StopPrice)
		}
		if !order.AvgPrice.IsZero() {
			fmt.Printf("  Avg Price:     %s\n", order.AvgPrice)
		}
		return
	}

	fmt.Printf("Order failed\n")
	fmt.Printf("  Reason:  %s\n", result.Kind)
	if result.Code != 0 {
		fmt.Printf("  Code:    %d\n", result.Code)
	}
	fmt.Printf("  Message: %s\n", result.Message)
}
