// Copyright (c) 2025 BVK Chaitanya

package setup

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/bvk/binbot/cli"
	"github.com/bvk/binbot/subcmds/cmdutil"
	"github.com/bvk/binbot/telegram"
)

type Telegram struct {
	cmdutil.ClientFlags

	token       string
	chatID      int64
	skipTesting bool
}

func (c *Telegram) Purpose() string {
	return "Setup configures Telegram notification parameters"
}

func (c *Telegram) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("telegram", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	fset.StringVar(&c.token, "token", "", "Telegram bot token from BotFather")
	fset.Int64Var(&c.chatID, "chat", 0, "Telegram chat id receiving notifications")
	fset.BoolVar(&c.skipTesting, "skip-testing", false, "don't test the parameters")
	return "telegram", fset, cli.CmdFunc(c.run)
}

func (c *Telegram) Description() string {
	return `

Command "telegram" configures an optional Telegram bot that receives a message
after every order placement attempt. Create a bot with BotFather to get the
token, message the bot once, and find the chat id from the getUpdates API.

  $ binbot setup telegram -token 110201543:AAHdqTcv...Ev_p3 -chat 123456789

`
}

func (c *Telegram) run(ctx context.Context, args []string) error {
	tsecrets := &telegram.Secrets{
		BotToken: c.token,
		ChatID:   c.chatID,
	}
	if err := tsecrets.Check(); err != nil {
		return err
	}

	if !c.skipTesting {
		client, err := telegram.New(ctx, tsecrets)
		if err != nil {
			return fmt.Errorf("could not verify the bot token: %w", err)
		}
		if err := client.SendMessage(ctx, "binbot notifications are configured"); err != nil {
			client.Close()
			return fmt.Errorf("could not send a test message: %w", err)
		}
		client.Close()
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
	secrets.Telegram = tsecrets

	js, err := json.MarshalIndent(secrets, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(fpath, js, os.FileMode(0600)); err != nil {
		return err
	}
	fmt.Printf("saved telegram parameters in %s\n", fpath)
	return nil
}
