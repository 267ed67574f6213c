// Copyright (c) 2025 BVK Chaitanya

package internal

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
)

const orderPath = "/fapi/v1/order"

// CreateOrder places a new order. Callers must supply the parameters in the
// order the exchange expects; the sequence is signed as-is.
func (c *Client) CreateOrder(ctx context.Context, values *Values) (*OrderResponse, error) {
	resp := new(OrderResponse)
	if err := signedJSON(ctx, c, http.MethodPost, orderPath, values, resp); err != nil {
		if !errors.Is(err, context.Canceled) {
			symbol, _ := values.Get("symbol")
			side, _ := values.Get("side")
			slog.Error("could not create order", "symbol", symbol, "side", side, "err", err)
		}
		return nil, err
	}
	return resp, nil
}

// GetOrder fetches the current status of an order.
func (c *Client) GetOrder(ctx context.Context, symbol string, orderID int64) (*OrderResponse, error) {
	values := new(Values)
	values.Set("symbol", symbol)
	values.Set("orderId", strconv.FormatInt(orderID, 10))

	resp := new(OrderResponse)
	if err := signedJSON(ctx, c, http.MethodGet, orderPath, values, resp); err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Error("could not get order", "symbol", symbol, "orderID", orderID, "err", err)
		}
		return nil, err
	}
	return resp, nil
}

// CancelOrder cancels an open order.
func (c *Client) CancelOrder(ctx context.Context, symbol string, orderID int64) (*OrderResponse, error) {
	values := new(Values)
	values.Set("symbol", symbol)
	values.Set("orderId", strconv.FormatInt(orderID, 10))

	resp := new(OrderResponse)
	if err := signedJSON(ctx, c, http.MethodDelete, orderPath, values, resp); err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Error("could not cancel order", "symbol", symbol, "orderID", orderID, "err", err)
		}
		return nil, err
	}
	return resp, nil
}
