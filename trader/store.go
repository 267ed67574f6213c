// Copyright (c) 2025 BVK Chaitanya

package trader

import (
	"context"
	"path"
	"time"

	"github.com/bvk/binbot/binance"
	"github.com/bvk/binbot/kvutil"
	"github.com/bvkgo/kv"
)

// Keyspace holds one record per order placement attempt. Keys are ordered by
// attempt time, so an ascend over the keyspace lists attempts oldest first.
const Keyspace = "/orders"

type OrderRecord struct {
	CreateTime time.Time

	Request       *OrderRequest
	ClientOrderID string

	Success bool
	Order   *binance.Order

	Kind    Kind
	Code    int
	Message string
}

func recordKey(at time.Time, clientOrderID string) string {
	return path.Join(Keyspace, at.UTC().Format("2006-01-02/150405.000000000"), clientOrderID)
}

func saveResult(ctx context.Context, db kv.Database, result *OrderResult) error {
	record := &OrderRecord{
		CreateTime:    time.Now(),
		Request:       result.Request,
		ClientOrderID: result.ClientOrderID,
		Success:       result.Success,
		Order:         result.Order,
		Kind:          result.Kind,
		Code:          result.Code,
		Message:       result.Message,
	}
	return kvutil.SetDB(ctx, db, recordKey(record.CreateTime, record.ClientOrderID), record)
}

// ScanOrders iterates over all recorded placement attempts oldest first.
func ScanOrders(ctx context.Context, db kv.Database, fn func(key string, record *OrderRecord) error) error {
	begin, end := kvutil.PathRange(Keyspace)
	return kvutil.AscendDB(ctx, db, begin, end, func(ctx context.Context, r kv.Reader, key string, record *OrderRecord) error {
		return fn(key, record)
	})
}
