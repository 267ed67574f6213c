// Copyright (c) 2025 BVK Chaitanya

package internal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Error is the exchange's structured error body. The exchange embeds
// business errors as a negative code with a message, sometimes inside an
// otherwise successful HTTP response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("binance api error %d: %s", e.Code, e.Message)
}

type ServerTimeResponse struct {
	ServerUnixMilli int64 `json:"serverTime"`
}

type TickerPriceResponse struct {
	Symbol    string          `json:"symbol"`
	Price     decimal.Decimal `json:"price"`
	UnixMilli int64           `json:"time"`
}

type ExchangeInfoResponse struct {
	TimeZone       string        `json:"timezone"`
	ServerUnixTime int64         `json:"serverTime"`
	SymbolInfoList []*SymbolInfo `json:"symbols"`
}

type SymbolInfo struct {
	Symbol string `json:"symbol"`
	Status string `json:"status"`

	ContractType string `json:"contractType"`

	OrderTypes []string `json:"orderTypes"`

	BaseAsset          string `json:"baseAsset"`
	QuoteAsset         string `json:"quoteAsset"`
	PricePrecision     int    `json:"pricePrecision"`
	QuantityPrecision  int    `json:"quantityPrecision"`
	BaseAssetPrecision int    `json:"baseAssetPrecision"`

	Filters []*Filter `json:"filters"`
}

type Filter struct {
	FilterType string          `json:"filterType"`
	MinPrice   decimal.Decimal `json:"minPrice"`
	MaxPrice   decimal.Decimal `json:"maxPrice"`
	TickSize   decimal.Decimal `json:"tickSize"`
	MinQty     decimal.Decimal `json:"minQty"`
	MaxQty     decimal.Decimal `json:"maxQty"`
	StepSize   decimal.Decimal `json:"stepSize"`
}

// OrderResponse is the shape returned by the order placement, order status,
// and order cancel endpoints. A zero AvgPrice on a freshly placed, unfilled
// order is valid.
type OrderResponse struct {
	OrderID       int64  `json:"orderId"`
	Symbol        string `json:"symbol"`
	Status        string `json:"status"`
	ClientOrderID string `json:"clientOrderId"`

	Side         string `json:"side"`
	PositionSide string `json:"positionSide"`
	Type         string `json:"type"`
	TimeInForce  string `json:"timeInForce"`

	Price       decimal.Decimal `json:"price"`
	AvgPrice    decimal.Decimal `json:"avgPrice"`
	StopPrice   decimal.Decimal `json:"stopPrice"`
	OrigQty     decimal.Decimal `json:"origQty"`
	ExecutedQty decimal.Decimal `json:"executedQty"`
	CumQuote    decimal.Decimal `json:"cumQuote"`

	ReduceOnly bool `json:"reduceOnly"`

	UpdateUnixMilli int64 `json:"updateTime"`
}

type AccountResponse struct {
	TotalWalletBalance decimal.Decimal `json:"totalWalletBalance"`
	TotalUnrealized    decimal.Decimal `json:"totalUnrealizedProfit"`
	AvailableBalance   decimal.Decimal `json:"availableBalance"`

	Assets []*AccountAsset `json:"assets"`
}

type AccountAsset struct {
	Asset            string          `json:"asset"`
	WalletBalance    decimal.Decimal `json:"walletBalance"`
	UnrealizedProfit decimal.Decimal `json:"unrealizedProfit"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
}
