// Copyright (c) 2025 BVK Chaitanya

package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bvk/binbot/cli"
	"github.com/bvk/binbot/sglog"
	"github.com/bvk/binbot/subcmds/exchange"
	"github.com/bvk/binbot/subcmds/order"
	"github.com/bvk/binbot/subcmds/setup"
)

var (
	logDir = flag.String("log-dir", "", "directory for log files (default $HOME/.binbot/logs)")
	debug  = flag.Bool("debug", false, "enable debug logs")
)

func main() {
	flag.Parse()

	backend, err := initLogging()
	if err != nil {
		log.Fatal(err)
	}
	defer backend.Close()

	orderCmds := []cli.Command{
		new(order.Place),
		new(order.Wizard),
		new(order.Get),
		new(order.Cancel),
		new(order.List),
	}

	exchangeCmds := []cli.Command{
		new(exchange.GetPrice),
		new(exchange.GetInfo),
		new(exchange.GetTime),
		new(exchange.GetBalances),
	}

	setupCmds := []cli.Command{
		new(setup.Binance),
		new(setup.Telegram),
	}

	cmds := []cli.Command{
		cli.Group("order", "Place/query/cancel futures orders", orderCmds...),
		cli.Group("exchange", "View/query exchange directly", exchangeCmds...),
		cli.Group("setup", "Configure api keys and notifications", setupCmds...),
	}
	if err := cli.Run(context.Background(), cmds, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func initLogging() (*sglog.Backend, error) {
	dir := *logDir
	if len(dir) == 0 {
		dir = filepath.Join(os.Getenv("HOME"), ".binbot", "logs")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	backend, err := sglog.NewBackend(&sglog.Options{
		LogDir: dir,
	})
	if err != nil {
		return nil, err
	}
	if *debug {
		backend.EnableDebugLog()
	}
	slog.SetDefault(slog.New(backend.Handler()))
	return backend, nil
}
