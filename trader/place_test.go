// Copyright (c) 2025 BVK Chaitanya

package trader

import (
	"context"
	"errors"
	"testing"

	"github.com/bvk/binbot/binance"
	"github.com/bvkgo/kv/kvmemdb"
	"github.com/shopspring/decimal"
)

type fakeExchange struct {
	calls   []*binance.Values
	order   *binance.Order
	failure error
}

func (f *fakeExchange) CreateOrder(ctx context.Context, values *binance.Values) (*binance.Order, error) {
	f.calls = append(f.calls, values.Clone())
	if f.failure != nil {
		return nil, f.failure
	}
	return f.order, nil
}

func (f *fakeExchange) GetOrder(ctx context.Context, symbol string, orderID int64) (*binance.Order, error) {
	return f.order, nil
}

func (f *fakeExchange) CancelOrder(ctx context.Context, symbol string, orderID int64) (*binance.Order, error) {
	return f.order, nil
}

func marketRequest(t *testing.T) *OrderRequest {
	t.Helper()
	req, err := Validate("BTCUSDT", "BUY", "MARKET", "0.01", "", "")
	if err != nil {
		t.Fatal(err)
	}
	return req
}

func TestPlaceOrderParameterSequence(t *testing.T) {
	ctx := context.Background()
	exch := &fakeExchange{
		order: &binance.Order{OrderID: 100, Symbol: "BTCUSDT", Status: "NEW"},
	}
	trader := NewTrader(exch, nil, nil)

	req, err := Validate("BTCUSDT", "BUY", "LIMIT", "0.01", "64000.1", "")
	if err != nil {
		t.Fatal(err)
	}
	result := trader.PlaceOrder(ctx, req)
	if !result.Success {
		t.Fatalf("unexpected failure: %v", result)
	}
	if len(result.ClientOrderID) == 0 {
		t.Errorf("result has no client order id")
	}

	if len(exch.calls) != 1 {
		t.Fatalf("wanted one exchange call, got %d", len(exch.calls))
	}
	want := "symbol=BTCUSDT&side=BUY&type=LIMIT&quantity=0.01&price=64000.1&timeInForce=GTC&positionSide=BOTH&newClientOrderId=" + result.ClientOrderID
	if got := exch.calls[0].Encode(); got != want {
		t.Errorf("parameter sequence is wrong:\n got %s\nwant %s", got, want)
	}
}

func TestPlaceOrderStopMarketParameters(t *testing.T) {
	ctx := context.Background()
	exch := &fakeExchange{
		order: &binance.Order{OrderID: 101, Symbol: "BTCUSDT", Status: "NEW"},
	}
	trader := NewTrader(exch, nil, nil)

	req, err := Validate("BTCUSDT", "SELL", "STOP_MARKET", "0.01", "", "59000")
	if err != nil {
		t.Fatal(err)
	}
	result := trader.PlaceOrder(ctx, req)
	if !result.Success {
		t.Fatalf("unexpected failure: %v", result)
	}
	want := "symbol=BTCUSDT&side=SELL&type=STOP_MARKET&quantity=0.01&stopPrice=59000&positionSide=BOTH&newClientOrderId=" + result.ClientOrderID
	if got := exch.calls[0].Encode(); got != want {
		t.Errorf("parameter sequence is wrong:\n got %s\nwant %s", got, want)
	}
}

func TestPlaceOrderErrorKinds(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		code int
		kind Kind
	}{
		{-1121, KindInvalidSymbol},
		{-2019, KindInsufficientMargin},
		{-1111, KindPrecisionViolation},
		{-1013, KindFilterViolation},
		{-4164, KindFilterViolation},
		{-1021, KindBadTimestamp},
		{-1022, KindBadSignature},
		{-1003, KindRateLimited},
		{-9999, KindExchangeRejected},
	}
	for _, c := range cases {
		exch := &fakeExchange{failure: &binance.Error{Code: c.code, Message: "rejected"}}
		result := NewTrader(exch, nil, nil).PlaceOrder(ctx, marketRequest(t))
		if result.Success {
			t.Fatalf("code %d: wanted a failure result", c.code)
		}
		if result.Kind != c.kind {
			t.Errorf("code %d: wanted kind %s, got %s", c.code, c.kind, result.Kind)
		}
		if result.Code != c.code {
			t.Errorf("code %d: result carries code %d", c.code, result.Code)
		}
	}
}

func TestPlaceOrderNetworkFailureIsNotRetried(t *testing.T) {
	ctx := context.Background()
	exch := &fakeExchange{failure: errors.New("dial tcp: connection timed out")}
	result := NewTrader(exch, nil, nil).PlaceOrder(ctx, marketRequest(t))
	if result.Success {
		t.Fatalf("wanted a failure result")
	}
	if result.Kind != KindNetworkFailure {
		t.Errorf("wanted %s, got %s", KindNetworkFailure, result.Kind)
	}
	if len(exch.calls) != 1 {
		t.Errorf("a failed placement must not be retried; got %d calls", len(exch.calls))
	}
}

func TestPlaceOrderRecordsAttempts(t *testing.T) {
	ctx := context.Background()
	db := kvmemdb.New()

	exch := &fakeExchange{
		order: &binance.Order{
			OrderID:  200,
			Symbol:   "BTCUSDT",
			Side:     "BUY",
			Type:     "MARKET",
			Status:   "FILLED",
			Quantity: decimal.RequireFromString("0.01"),
		},
	}
	trader := NewTrader(exch, db, nil)

	first := trader.PlaceOrder(ctx, marketRequest(t))
	if !first.Success {
		t.Fatalf("unexpected failure: %v", first)
	}

	exch.failure = &binance.Error{Code: -2019, Message: "Margin is insufficient."}
	second := trader.PlaceOrder(ctx, marketRequest(t))
	if second.Success {
		t.Fatalf("wanted a failure result")
	}

	var records []*OrderRecord
	if err := ScanOrders(ctx, db, func(key string, record *OrderRecord) error {
		records = append(records, record)
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("wanted two records, got %d", len(records))
	}
	if !records[0].Success || records[0].Order == nil || records[0].Order.OrderID != 200 {
		t.Errorf("first record does not hold the successful order: %+v", records[0])
	}
	if records[1].Success || records[1].Kind != KindInsufficientMargin {
		t.Errorf("second record does not hold the failure: %+v", records[1])
	}
	if records[0].ClientOrderID == records[1].ClientOrderID {
		t.Errorf("client order ids must be unique per attempt")
	}
}
