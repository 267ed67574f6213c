// Copyright (c) 2025 BVK Chaitanya

package trader

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FieldError reports which input field failed validation and why.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func isAlnum(s string) bool {
	for _, c := range s {
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

func parsePositiveDecimal(field, s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, &FieldError{Field: field, Reason: fmt.Sprintf("%q is not a number", s)}
	}
	if v.Sign() <= 0 {
		return decimal.Decimal{}, &FieldError{Field: field, Reason: "must be a positive value"}
	}
	return v, nil
}

// Validate checks the raw order inputs and returns a normalized OrderRequest.
// Fields are checked in order of symbol, side, type, quantity, price and stop
// price; the first failure aborts with a FieldError. Price is accepted only
// for LIMIT orders and stop price only for STOP_MARKET orders; supplying
// either where it doesn't belong is rejected rather than ignored.
func Validate(symbol, side, orderType, quantity, price, stopPrice string) (*OrderRequest, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if len(symbol) == 0 {
		return nil, &FieldError{Field: "symbol", Reason: "cannot be empty"}
	}
	if !isAlnum(symbol) {
		return nil, &FieldError{Field: "symbol", Reason: "must be alphanumeric"}
	}
	if len(symbol) < 3 || len(symbol) > 20 {
		return nil, &FieldError{Field: "symbol", Reason: "length must be between 3 and 20"}
	}

	req := &OrderRequest{Symbol: symbol}

	switch s := Side(strings.ToUpper(strings.TrimSpace(side))); s {
	case SideBuy, SideSell:
		req.Side = s
	default:
		return nil, &FieldError{Field: "side", Reason: fmt.Sprintf("%q is not one of BUY or SELL", side)}
	}

	switch t := OrderType(strings.ToUpper(strings.TrimSpace(orderType))); t {
	case TypeMarket, TypeLimit, TypeStopMarket:
		req.Type = t
	default:
		return nil, &FieldError{Field: "type", Reason: fmt.Sprintf("%q is not one of MARKET, LIMIT or STOP_MARKET", orderType)}
	}

	qty, err := parsePositiveDecimal("quantity", quantity)
	if err != nil {
		return nil, err
	}
	req.Quantity = qty

	price = strings.TrimSpace(price)
	stopPrice = strings.TrimSpace(stopPrice)

	switch req.Type {
	case TypeLimit:
		if len(price) == 0 {
			return nil, &FieldError{Field: "price", Reason: "required for LIMIT orders"}
		}
		p, err := parsePositiveDecimal("price", price)
		if err != nil {
			return nil, err
		}
		req.Price = p
		if len(stopPrice) != 0 {
			return nil, &FieldError{Field: "stopPrice", Reason: "unexpected for LIMIT orders"}
		}

	case TypeStopMarket:
		if len(price) != 0 {
			return nil, &FieldError{Field: "price", Reason: "unexpected for STOP_MARKET orders"}
		}
		if len(stopPrice) == 0 {
			return nil, &FieldError{Field: "stopPrice", Reason: "required for STOP_MARKET orders"}
		}
		p, err := parsePositiveDecimal("stopPrice", stopPrice)
		if err != nil {
			return nil, err
		}
		req.StopPrice = p

	case TypeMarket:
		if len(price) != 0 {
			return nil, &FieldError{Field: "price", Reason: "unexpected for MARKET orders"}
		}
		if len(stopPrice) != 0 {
			return nil, &FieldError{Field: "stopPrice", Reason: "unexpected for MARKET orders"}
		}
	}

	return req, nil
}
