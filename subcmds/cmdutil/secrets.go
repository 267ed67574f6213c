// Copyright (c) 2025 BVK Chaitanya

package cmdutil

import (
	"encoding/json"
	"os"

	"github.com/bvk/binbot/binance"
	"github.com/bvk/binbot/telegram"
)

type Secrets struct {
	Binance  *binance.Credentials `json:"binance"`
	Telegram *telegram.Secrets    `json:"telegram"`
}

func SecretsFromFile(fpath string) (*Secrets, error) {
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, err
	}
	s := new(Secrets)
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (v *Secrets) Check() error {
	if v.Binance != nil {
		if err := v.Binance.Check(); err != nil {
			return err
		}
	}
	if v.Telegram != nil {
		if err := v.Telegram.Check(); err != nil {
			return err
		}
	}
	return nil
}
