// Copyright (c) 2025 BVK Chaitanya

// Package cmdutil holds flag helpers shared by all subcommands.
package cmdutil

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/bvk/binbot/binance"
	"github.com/bvk/binbot/telegram"
	"github.com/bvkgo/kv"
	"github.com/bvkgo/kvbadger"
	"github.com/dgraph-io/badger/v4"
)

// ClientFlags resolves the data directory, the secrets file and the exchange
// client used by most subcommands.
type ClientFlags struct {
	dataDir     string
	secretsPath string
	mainnet     bool
}

func (f *ClientFlags) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&f.dataDir, "data-dir", "", "path to the data directory")
	fset.StringVar(&f.secretsPath, "secrets-file", "", "path to credentials file")
	fset.BoolVar(&f.mainnet, "mainnet", false, "use the production exchange instead of the testnet")
}

// Mainnet reports whether commands target the production exchange.
func (f *ClientFlags) Mainnet() bool {
	return f.mainnet
}

// DataDir resolves the data directory, creating it when missing.
func (f *ClientFlags) DataDir() (string, error) {
	dataDir := f.dataDir
	if len(dataDir) == 0 {
		dataDir = filepath.Join(os.Getenv("HOME"), ".binbot")
	}
	if _, err := os.Stat(dataDir); err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("could not stat data directory %q: %w", dataDir, err)
		}
		if err := os.MkdirAll(dataDir, 0700); err != nil {
			return "", fmt.Errorf("could not create data directory %q: %w", dataDir, err)
		}
	}
	return filepath.Abs(dataDir)
}

func (f *ClientFlags) SecretsPath() (string, error) {
	if len(f.secretsPath) != 0 {
		return f.secretsPath, nil
	}
	dataDir, err := f.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "secrets.json"), nil
}

func (f *ClientFlags) Secrets() (*Secrets, error) {
	fpath, err := f.SecretsPath()
	if err != nil {
		return nil, err
	}
	secrets, err := SecretsFromFile(fpath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("binbot is not configured; run \"binbot setup binance\" first")
		}
		return nil, err
	}
	if err := secrets.Check(); err != nil {
		return nil, err
	}
	return secrets, nil
}

// Exchange opens an authenticated exchange client using the configured
// credentials. Callers must close the returned client.
func (f *ClientFlags) Exchange(ctx context.Context) (*binance.Exchange, error) {
	secrets, err := f.Secrets()
	if err != nil {
		return nil, err
	}
	if secrets.Binance == nil {
		return nil, fmt.Errorf("no binance credentials found; run \"binbot setup binance\" first")
	}
	opts := &binance.Options{}
	if f.mainnet {
		opts.RestHostname = binance.MainnetHostname
	}
	return binance.New(ctx, secrets.Binance, opts)
}

// Notifier opens a telegram client when notification keys are configured and
// returns nil otherwise.
func (f *ClientFlags) Notifier(ctx context.Context) (*telegram.Client, error) {
	secrets, err := f.Secrets()
	if err != nil {
		return nil, err
	}
	if secrets.Telegram == nil {
		return nil, nil
	}
	return telegram.New(ctx, secrets.Telegram)
}

// DBFlags opens the order datastore under the data directory.
type DBFlags struct {
	ClientFlags

	noDatastore bool
}

func (f *DBFlags) SetFlags(fset *flag.FlagSet) {
	f.ClientFlags.SetFlags(fset)
	fset.BoolVar(&f.noDatastore, "no-datastore", false, "don't record order attempts in the datastore")
}

func (f *DBFlags) GetDatabase(ctx context.Context) (kv.Database, func(), error) {
	if f.noDatastore {
		return nil, func() {}, nil
	}
	dataDir, err := f.DataDir()
	if err != nil {
		return nil, nil, err
	}

	isGoodKey := func(k string) bool {
		return path.IsAbs(k) && k == path.Clean(k)
	}

	bopts := badger.DefaultOptions(filepath.Join(dataDir, "db"))
	bopts = bopts.WithLogger(nil)
	bdb, err := badger.Open(bopts)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open the datastore: %w", err)
	}
	db := kvbadger.New(bdb, isGoodKey)
	return db, func() { bdb.Close() }, nil
}
