// Copyright (c) 2025 BVK Chaitanya

package trader

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateMarket(t *testing.T) {
	req, err := Validate("btcusdt", "buy", "market", "0.01", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if req.Symbol != "BTCUSDT" {
		t.Errorf("symbol is not uppercased: %q", req.Symbol)
	}
	if req.Side != SideBuy || req.Type != TypeMarket {
		t.Errorf("unexpected side/type: %s/%s", req.Side, req.Type)
	}
	if !req.Quantity.Equal(decimal.RequireFromString("0.01")) {
		t.Errorf("unexpected quantity: %s", req.Quantity)
	}
	if !req.Price.IsZero() || !req.StopPrice.IsZero() {
		t.Errorf("market order must not carry price or stop price")
	}
}

func TestValidateLimit(t *testing.T) {
	req, err := Validate("ETHUSDT", "SELL", "LIMIT", "1.5", "2500.50", "")
	if err != nil {
		t.Fatal(err)
	}
	if !req.Price.Equal(decimal.RequireFromString("2500.50")) {
		t.Errorf("unexpected price: %s", req.Price)
	}

	if _, err := Validate("ETHUSDT", "SELL", "LIMIT", "1.5", "", ""); err == nil {
		t.Errorf("limit order without a price must be rejected")
	}
	if _, err := Validate("ETHUSDT", "SELL", "LIMIT", "1.5", "2500", "2000"); err == nil {
		t.Errorf("limit order with a stop price must be rejected")
	}
}

func TestValidateStopMarket(t *testing.T) {
	req, err := Validate("BTCUSDT", "SELL", "STOP_MARKET", "0.01", "", "59000")
	if err != nil {
		t.Fatal(err)
	}
	if !req.StopPrice.Equal(decimal.RequireFromString("59000")) {
		t.Errorf("unexpected stop price: %s", req.StopPrice)
	}

	if _, err := Validate("BTCUSDT", "SELL", "STOP_MARKET", "0.01", "", ""); err == nil {
		t.Errorf("stop-market order without a stop price must be rejected")
	}
	if _, err := Validate("BTCUSDT", "SELL", "STOP_MARKET", "0.01", "59000", "59000"); err == nil {
		t.Errorf("stop-market order with a price must be rejected")
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name string

		symbol, side, otype, qty, price, stop string

		field string
	}{
		{"empty-symbol", "", "BUY", "MARKET", "1", "", "", "symbol"},
		{"symbol-punct", "BTC-USDT", "BUY", "MARKET", "1", "", "", "symbol"},
		{"symbol-short", "BT", "BUY", "MARKET", "1", "", "", "symbol"},
		{"symbol-long", "ABCDEFGHIJKLMNOPQRSTU", "BUY", "MARKET", "1", "", "", "symbol"},
		{"bad-side", "BTCUSDT", "HOLD", "MARKET", "1", "", "", "side"},
		{"bad-type", "BTCUSDT", "BUY", "STOP_LIMIT", "1", "", "", "type"},
		{"qty-nan", "BTCUSDT", "BUY", "MARKET", "lots", "", "", "quantity"},
		{"qty-zero", "BTCUSDT", "BUY", "MARKET", "0", "", "", "quantity"},
		{"qty-negative", "BTCUSDT", "BUY", "MARKET", "-0.5", "", "", "quantity"},
		{"price-nan", "BTCUSDT", "BUY", "LIMIT", "1", "cheap", "", "price"},
		{"price-zero", "BTCUSDT", "BUY", "LIMIT", "1", "0", "", "price"},
		{"stop-negative", "BTCUSDT", "SELL", "STOP_MARKET", "1", "", "-59000", "stopPrice"},
		{"market-with-price", "BTCUSDT", "BUY", "MARKET", "1", "60000", "", "price"},
		{"market-with-stop", "BTCUSDT", "BUY", "MARKET", "1", "", "59000", "stopPrice"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Validate(c.symbol, c.side, c.otype, c.qty, c.price, c.stop)
			if err == nil {
				t.Fatalf("wanted a validation failure, got none")
			}
			var ferr *FieldError
			if !errors.As(err, &ferr) {
				t.Fatalf("wanted a FieldError, got %T: %v", err, err)
			}
			if ferr.Field != c.field {
				t.Errorf("wanted failure on field %q, got %q (%v)", c.field, ferr.Field, err)
			}
		})
	}
}

func TestValidateIsDeterministic(t *testing.T) {
	a, err := Validate(" btcusdt ", "Buy", "limit", "0.010", "64000.10", "")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Validate(" btcusdt ", "Buy", "limit", "0.010", "64000.10", "")
	if err != nil {
		t.Fatal(err)
	}
	if a.Symbol != b.Symbol || a.Side != b.Side || a.Type != b.Type ||
		!a.Quantity.Equal(b.Quantity) || !a.Price.Equal(b.Price) {
		t.Errorf("repeated validation differs: %+v vs %+v", a, b)
	}
}
