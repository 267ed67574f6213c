// Copyright (c) 2025 BVK Chaitanya

// Package trader validates order parameters, places orders through an
// exchange and records every attempt in the datastore.
package trader

import (
	"fmt"

	"github.com/bvk/binbot/binance"
	"github.com/shopspring/decimal"
)

type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

type OrderType string

const (
	TypeMarket     OrderType = "MARKET"
	TypeLimit      OrderType = "LIMIT"
	TypeStopMarket OrderType = "STOP_MARKET"
)

// PositionSide is fixed to one-way position mode. Hedge mode is not
// supported.
const PositionSide = "BOTH"

// TimeInForce applied to all limit orders.
const TimeInForce = "GTC"

// OrderRequest holds a fully validated order. Price is non-zero only for
// LIMIT orders and StopPrice is non-zero only for STOP_MARKET orders; Validate
// maintains this.
type OrderRequest struct {
	Symbol    string
	Side      Side
	Type      OrderType
	Quantity  decimal.Decimal
	Price     decimal.Decimal
	StopPrice decimal.Decimal
}

// Kind classifies a failed order attempt.
type Kind string

const (
	KindValidation         Kind = "VALIDATION"
	KindNetworkFailure     Kind = "NETWORK_FAILURE"
	KindInvalidSymbol      Kind = "INVALID_SYMBOL"
	KindInsufficientMargin Kind = "INSUFFICIENT_MARGIN"
	KindPrecisionViolation Kind = "PRECISION_VIOLATION"
	KindFilterViolation    Kind = "FILTER_VIOLATION"
	KindBadTimestamp       Kind = "BAD_TIMESTAMP"
	KindBadSignature       Kind = "BAD_SIGNATURE"
	KindRateLimited        Kind = "RATE_LIMITED"
	KindExchangeRejected   Kind = "EXCHANGE_REJECTED"
)

// kindForCode maps well-known exchange error codes to a failure kind. Codes
// not listed here fall back to KindExchangeRejected.
func kindForCode(code int) Kind {
	switch code {
	case -1121:
		return KindInvalidSymbol
	case -2019:
		return KindInsufficientMargin
	case -1111:
		return KindPrecisionViolation
	case -1013, -4164:
		return KindFilterViolation
	case -1021:
		return KindBadTimestamp
	case -1022:
		return KindBadSignature
	case -1003:
		return KindRateLimited
	}
	return KindExchangeRejected
}

// OrderResult is the outcome of a single placement attempt. Exactly one of
// Order (on success) or Kind/Code/Message (on failure) is meaningful.
type OrderResult struct {
	Success bool

	Request       *OrderRequest
	ClientOrderID string

	Order *binance.Order

	Kind    Kind
	Code    int
	Message string
}

func (r *OrderResult) String() string {
	if r.Success {
		return fmt.Sprintf("order %d %s: %s %s %s qty=%s status=%s",
			r.Order.OrderID, r.Order.ClientOrderID, r.Order.Symbol,
			r.Order.Side, r.Order.Type, r.Order.Quantity.String(),
			r.Order.Status)
	}
	return fmt.Sprintf("order failed (%s code=%d): %s", r.Kind, r.Code, r.Message)
}
