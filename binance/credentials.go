// Copyright (c) 2025 BVK Chaitanya

package binance

import "fmt"

type Credentials struct {
	Key    string `json:"key"`
	Secret string `json:"secret"`
}

func (c *Credentials) Check() error {
	if c == nil || len(c.Key) == 0 || len(c.Secret) == 0 {
		return fmt.Errorf("binance api key and secret are required")
	}
	return nil
}
