// Copyright (c) 2025 BVK Chaitanya

package ctxutil

import (
	"context"
	"time"
)

// Sleep blocks the caller for the given timeout duration or till the context
// is canceled, whichever happens earlier.
func Sleep(ctx context.Context, timeout time.Duration) {
	sctx, scancel := context.WithTimeout(ctx, timeout)
	<-sctx.Done()
	scancel()
}

// RetryTimeout runs the given function repeatedly with an interval gap
// between invocations until the function succeeds or the timeout expires.
func RetryTimeout(ctx context.Context, interval, timeout time.Duration, f func() error) error {
	tctx, tcancel := context.WithTimeout(ctx, timeout)
	defer tcancel()

	var err error
	for {
		if err = f(); err == nil {
			return nil
		}
		Sleep(tctx, interval)
		if tctx.Err() != nil {
			return err
		}
	}
}
