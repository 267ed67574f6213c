// Copyright (c) 2025 BVK Chaitanya

package order

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bvk/binbot/cli"
	"github.com/bvk/binbot/subcmds/cmdutil"
	"github.com/bvk/binbot/trader"
)

type Wizard struct {
	cmdutil.DBFlags
}

func (c *Wizard) Purpose() string {
	return "Places an order through interactive prompts"
}

func (c *Wizard) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("wizard", flag.ContinueOnError)
	c.DBFlags.SetFlags(fset)
	return "wizard", fset, cli.CmdFunc(c.run)
}

func (c *Wizard) Description() string {
	return `

Command "wizard" collects order parameters interactively and places the order
after an explicit confirmation. Parameters are re-prompted until they pass
validation.

`
}

func (c *Wizard) run(ctx context.Context, args []string) error {
	reader := bufio.NewReader(os.Stdin)
	req, err := readOrder(reader)
	if err != nil {
		return err
	}

	fmt.Printf("\nAbout to place the following order:\n")
	fmt.Printf("  Symbol:   %s\n", req.Symbol)
	fmt.Printf("  Side:     %s\n", req.Side)
	fmt.Printf("  Type:     %s\n", req.Type)
	fmt.Printf("  Quantity: %s\n", req.Quantity)
	if req.Type == trader.TypeLimit {
		fmt.Printf("  Price:    %s\n", req.Price)
	}
	if req.Type == trader.TypeStopMarket {
		fmt.Printf("  Stop:     %s\n", req.StopPrice)
	}

	answer, err := prompt(reader, "Proceed? (yes/no): ")
	if err != nil {
		return err
	}
	if answer != "yes" && answer != "y" {
		fmt.Printf("aborted\n")
		return nil
	}
	return placeOrder(ctx, &c.DBFlags, req)
}

func prompt(r *bufio.Reader, msg string) (string, error) {
	fmt.Print(msg)
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if len(line) == 0 && err == io.EOF {
		return "", io.ErrUnexpectedEOF
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

// readOrder prompts for each order parameter. Every answer is run through the
// same validation as the non-interactive path; bad answers are re-prompted
// once the validator names the offending field.
func readOrder(r *bufio.Reader) (*trader.OrderRequest, error) {
	var symbol, side, orderType, quantity, price, stopPrice string
	for {
		var err error
		if symbol, err = prompt(r, "Symbol (eg. BTCUSDT): "); err != nil {
			return nil, err
		}
		if side, err = prompt(r, "Side (BUY/SELL): "); err != nil {
			return nil, err
		}
		if orderType, err = prompt(r, "Type (MARKET/LIMIT/STOP_MARKET): "); err != nil {
			return nil, err
		}
		if quantity, err = prompt(r, "Quantity: "); err != nil {
			return nil, err
		}
		price, stopPrice = "", ""
		switch strings.ToUpper(orderType) {
		case string(trader.TypeLimit):
			if price, err = prompt(r, "Price: "); err != nil {
				return nil, err
			}
		case string(trader.TypeStopMarket):
			if stopPrice, err = prompt(r, "Stop Price: "); err != nil {
				return nil, err
			}
		}

		req, err := trader.Validate(symbol, side, orderType, quantity, price, stopPrice)
		if err != nil {
			fmt.Printf("%v; please try again\n\n", err)
			continue
		}
		return req, nil
	}
}
