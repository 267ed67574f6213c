// Copyright (c) 2025 BVK Chaitanya

// Package binance implements access to the Binance USDⓈ-M futures REST API
// with HMAC-SHA256 signed requests.
package binance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bvk/binbot/binance/internal"
	"github.com/shopspring/decimal"
)

// Values is the ordered parameter sequence used by the signed endpoints.
// Parameter order is part of the signed payload, so callers must add
// parameters in the order the exchange expects.
type Values = internal.Values

// Error is the exchange's structured error with a numeric code and message.
type Error = internal.Error

// ErrorCode returns the exchange error code buried in err, if any.
func ErrorCode(err error) (int, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	return 0, false
}

// Order is the normalized view of an exchange order.
type Order struct {
	OrderID       int64
	ClientOrderID string

	Symbol       string
	Side         string
	Type         string
	Status       string
	TimeInForce  string
	PositionSide string

	Price       decimal.Decimal
	AvgPrice    decimal.Decimal
	StopPrice   decimal.Decimal
	Quantity    decimal.Decimal
	ExecutedQty decimal.Decimal

	UpdateTime time.Time
}

func orderFromResponse(resp *internal.OrderResponse) *Order {
	return &Order{
		OrderID:       resp.OrderID,
		ClientOrderID: resp.ClientOrderID,
		Symbol:        resp.Symbol,
		Side:          resp.Side,
		Type:          resp.Type,
		Status:        resp.Status,
		TimeInForce:   resp.TimeInForce,
		PositionSide:  resp.PositionSide,
		Price:         resp.Price,
		AvgPrice:      resp.AvgPrice,
		StopPrice:     resp.StopPrice,
		Quantity:      resp.OrigQty,
		ExecutedQty:   resp.ExecutedQty,
		UpdateTime:    time.UnixMilli(resp.UpdateUnixMilli).UTC(),
	}
}

type Exchange struct {
	opts Options

	client *internal.Client
}

// New creates a client for the binance futures exchange. The credential
// strings are opaque to this package; they are only ever used to sign and
// authenticate requests, never logged or echoed back.
func New(ctx context.Context, credentials *Credentials, opts *Options) (*Exchange, error) {
	if err := credentials.Check(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = new(Options)
	}
	if err := opts.Check(); err != nil {
		return nil, err
	}
	client, err := internal.New(ctx, credentials.Key, credentials.Secret, opts.internalOptions())
	if err != nil {
		return nil, err
	}
	return &Exchange{opts: *opts, client: client}, nil
}

// Close shuts down the exchange client.
func (ex *Exchange) Close() error {
	return ex.client.Close()
}

func (ex *Exchange) ExchangeName() string {
	return "binance"
}

// CreateOrder places a new order with the given ordered parameter sequence
// against the order-placement endpoint. The call performs a single attempt;
// retrying a signed write request is the caller's decision because a blind
// retry can place a duplicate order.
func (ex *Exchange) CreateOrder(ctx context.Context, values *Values) (*Order, error) {
	resp, err := ex.client.CreateOrder(ctx, values)
	if err != nil {
		return nil, err
	}
	return orderFromResponse(resp), nil
}

// GetOrder fetches the current status of an order.
func (ex *Exchange) GetOrder(ctx context.Context, symbol string, orderID int64) (*Order, error) {
	resp, err := ex.client.GetOrder(ctx, symbol, orderID)
	if err != nil {
		return nil, err
	}
	return orderFromResponse(resp), nil
}

// CancelOrder cancels an open order.
func (ex *Exchange) CancelOrder(ctx context.Context, symbol string, orderID int64) (*Order, error) {
	resp, err := ex.client.CancelOrder(ctx, symbol, orderID)
	if err != nil {
		return nil, err
	}
	return orderFromResponse(resp), nil
}

// GetPrice returns the latest traded price for a symbol.
func (ex *Exchange) GetPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	resp, err := ex.client.GetTickerPrice(ctx, symbol)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return resp.Price, nil
}

// SymbolInfo describes a tradable product.
type SymbolInfo struct {
	Symbol string
	Status string

	BaseAsset  string
	QuoteAsset string

	PricePrecision    int
	QuantityPrecision int

	OrderTypes []string
}

// GetSymbols returns the exchange's tradable products.
func (ex *Exchange) GetSymbols(ctx context.Context) ([]*SymbolInfo, error) {
	resp, err := ex.client.GetExchangeInfo(ctx)
	if err != nil {
		return nil, err
	}
	var infos []*SymbolInfo
	for _, s := range resp.SymbolInfoList {
		infos = append(infos, &SymbolInfo{
			Symbol:            s.Symbol,
			Status:            s.Status,
			BaseAsset:         s.BaseAsset,
			QuoteAsset:        s.QuoteAsset,
			PricePrecision:    s.PricePrecision,
			QuantityPrecision: s.QuantityPrecision,
			OrderTypes:        s.OrderTypes,
		})
	}
	return infos, nil
}

// Balance holds one asset's balances in the futures account.
type Balance struct {
	Asset string

	WalletBalance    decimal.Decimal
	AvailableBalance decimal.Decimal
	UnrealizedProfit decimal.Decimal
}

// GetBalances returns non-zero asset balances in the futures account.
func (ex *Exchange) GetBalances(ctx context.Context) ([]*Balance, error) {
	resp, err := ex.client.GetAccount(ctx)
	if err != nil {
		return nil, err
	}
	var balances []*Balance
	for _, a := range resp.Assets {
		if a.WalletBalance.IsZero() && a.UnrealizedProfit.IsZero() {
			continue
		}
		balances = append(balances, &Balance{
			Asset:            a.Asset,
			WalletBalance:    a.WalletBalance,
			AvailableBalance: a.AvailableBalance,
			UnrealizedProfit: a.UnrealizedProfit,
		})
	}
	return balances, nil
}

// GetServerTime returns the exchange server's current time.
func (ex *Exchange) GetServerTime(ctx context.Context) (time.Time, error) {
	resp, err := ex.client.GetServerTime(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not get server time: %w", err)
	}
	return time.UnixMilli(resp.ServerUnixMilli).UTC(), nil
}
