// Copyright (c) 2025 BVK Chaitanya

package setup

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bvk/binbot/binance"
	"github.com/bvk/binbot/cli"
	"github.com/bvk/binbot/subcmds/cmdutil"
	"golang.org/x/term"
)

type Binance struct {
	cmdutil.ClientFlags

	key         string
	secret      string
	skipTesting bool
}

func (c *Binance) Purpose() string {
	return "Setup configures Binance API access parameters"
}

func (c *Binance) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("binance", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	fset.StringVar(&c.key, "access-key", "", "Binance API key as a string")
	fset.StringVar(&c.secret, "access-secret", "", "Binance API secret; prompted without echo when empty")
	fset.BoolVar(&c.skipTesting, "skip-testing", false, "don't test the parameters")
	return "binance", fset, cli.CmdFunc(c.run)
}

func (c *Binance) Description() string {
	return `

Command "binance" helps users configure Binance futures API keys.

API keys are required to place and query orders. Testnet keys are created at
the testnet web interface; they do not work against the production exchange
and vice versa. Pass -mainnet to configure and verify keys against the
production exchange.

  $ binbot setup binance -access-key=GuA3...mhfq

The API secret is read from the terminal without echo when the -access-secret
flag is not given.

`
}

func (c *Binance) run(ctx context.Context, args []string) error {
	if len(c.key) == 0 {
		return fmt.Errorf("-access-key flag is required")
	}
	if len(c.secret) == 0 {
		fmt.Print("Enter the API secret: ")
		data, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("could not read the api secret: %w", err)
		}
		c.secret = strings.TrimSpace(string(data))
	}

	credentials := &binance.Credentials{
		Key:    c.key,
		Secret: c.secret,
	}
	if err := credentials.Check(); err != nil {
		return err
	}

	if !c.skipTesting {
		if err := c.testCredentials(ctx, credentials); err != nil {
			return fmt.Errorf("could not verify the api keys: %w", err)
		}
	}

	fpath, err := c.SecretsPath()
	if err != nil {
		return err
	}
	secrets, err := cmdutil.SecretsFromFile(fpath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		secrets = &cmdutil.Secrets{}
	}
	secrets.Binance = credentials

	js, err := json.MarshalIndent(secrets, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(fpath, js, os.FileMode(0600)); err != nil {
		return err
	}
	fmt.Printf("saved binance credentials in %s\n", fpath)
	return nil
}

// testCredentials attempts an authenticated account query to validate the
// keys.
func (c *Binance) testCredentials(ctx context.Context, credentials *binance.Credentials) error {
	opts := &binance.Options{}
	if c.Mainnet() {
		opts.RestHostname = binance.MainnetHostname
	}
	exch, err := binance.New(ctx, credentials, opts)
	if err != nil {
		return err
	}
	defer exch.Close()

	if _, err := exch.GetBalances(ctx); err != nil {
		return err
	}
	return nil
}
