// Copyright (c) 2025 BVK Chaitanya

package trader

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bvk/binbot/binance"
	"github.com/bvkgo/kv"
	"github.com/google/uuid"
)

// Exchange is the subset of the exchange client used to manage orders.
type Exchange interface {
	CreateOrder(ctx context.Context, values *binance.Values) (*binance.Order, error)
	GetOrder(ctx context.Context, symbol string, orderID int64) (*binance.Order, error)
	CancelOrder(ctx context.Context, symbol string, orderID int64) (*binance.Order, error)
}

// Notifier receives a short human-readable message after every placement
// attempt. May be nil.
type Notifier interface {
	SendMessage(ctx context.Context, text string) error
}

type Trader struct {
	exchange Exchange

	// db, when non-nil, records every placement attempt.
	db kv.Database

	notifier Notifier
}

func NewTrader(exchange Exchange, db kv.Database, notifier Notifier) *Trader {
	return &Trader{exchange: exchange, db: db, notifier: notifier}
}

// orderValues serializes the request into exchange parameters. The parameter
// sequence is part of the signed payload, so it is assembled here in one
// place and never reordered.
func orderValues(req *OrderRequest, clientOrderID string) *binance.Values {
	values := new(binance.Values)
	values.Set("symbol", req.Symbol)
	values.Set("side", string(req.Side))
	values.Set("type", string(req.Type))
	values.Set("quantity", req.Quantity.String())
	switch req.Type {
	case TypeLimit:
		values.Set("price", req.Price.String())
		values.Set("timeInForce", TimeInForce)
	case TypeStopMarket:
		values.Set("stopPrice", req.StopPrice.String())
	}
	values.Set("positionSide", PositionSide)
	values.Set("newClientOrderId", clientOrderID)
	return values
}

// PlaceOrder submits the order to the exchange in a single attempt. Failures
// are never retried automatically because a timed-out request may still have
// placed the order; retrying would risk a duplicate. The outcome is returned
// as an OrderResult and recorded in the datastore when one is configured.
func (t *Trader) PlaceOrder(ctx context.Context, req *OrderRequest) *OrderResult {
	result := &OrderResult{
		Request:       req,
		ClientOrderID: uuid.NewString(),
	}

	order, err := t.exchange.CreateOrder(ctx, orderValues(req, result.ClientOrderID))
	if err != nil {
		var apiErr *binance.Error
		if errors.As(err, &apiErr) {
			result.Kind = kindForCode(apiErr.Code)
			result.Code = apiErr.Code
			result.Message = apiErr.Message
		} else {
			result.Kind = KindNetworkFailure
			result.Message = err.Error()
		}
		slog.Warn("could not place order", "symbol", req.Symbol, "kind", result.Kind, "code", result.Code, "message", result.Message)
	} else {
		result.Success = true
		result.Order = order
		slog.Info("order placed", "symbol", order.Symbol, "orderID", order.OrderID, "status", order.Status)
	}

	if t.db != nil {
		if err := saveResult(ctx, t.db, result); err != nil {
			slog.Error("could not record order attempt in the datastore", "error", err)
		}
	}
	if t.notifier != nil {
		if err := t.notifier.SendMessage(ctx, result.String()); err != nil {
			slog.Warn("could not send order notification", "error", err)
		}
	}
	return result
}

// GetOrder fetches the current state of an order from the exchange.
func (t *Trader) GetOrder(ctx context.Context, symbol string, orderID int64) (*binance.Order, error) {
	return t.exchange.GetOrder(ctx, symbol, orderID)
}

// CancelOrder cancels an open order on the exchange.
func (t *Trader) CancelOrder(ctx context.Context, symbol string, orderID int64) (*binance.Order, error) {
	return t.exchange.CancelOrder(ctx, symbol, orderID)
}
