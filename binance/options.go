// Copyright (c) 2025 BVK Chaitanya

package binance

import (
	"time"

	"github.com/bvk/binbot/binance/internal"
)

var (
	// TestnetHostname is the default REST endpoint. Production trading goes
	// through MainnetHostname.
	TestnetHostname = "testnet.binancefuture.com"
	MainnetHostname = "fapi.binance.com"
)

type Options struct {
	// Hostname for the REST service endpoint.
	RestHostname string

	// Timeout to use for the HTTP requests.
	HttpClientTimeout time.Duration

	// RecvWindow bounds the server-side acceptance window for signed
	// requests.
	RecvWindow time.Duration

	// Max limit for time difference between local time and the server time.
	MaxTimeAdjustment time.Duration

	// Max time latency for fetching the server time from the exchange.
	MaxFetchTimeLatency time.Duration

	// Time interval between server time refetches.
	SyncTimeInterval time.Duration
}

func (v *Options) setDefaults() {
	if v.RestHostname == "" {
		v.RestHostname = TestnetHostname
	}
	if v.HttpClientTimeout == 0 {
		v.HttpClientTimeout = 10 * time.Second
	}
	if v.RecvWindow == 0 {
		v.RecvWindow = 5 * time.Second
	}
	if v.MaxTimeAdjustment == 0 {
		v.MaxTimeAdjustment = time.Minute
	}
	if v.MaxFetchTimeLatency == 0 {
		v.MaxFetchTimeLatency = 5 * time.Second
	}
	if v.SyncTimeInterval == 0 {
		v.SyncTimeInterval = time.Minute
	}
}

// Check validates the options.
func (v *Options) Check() error {
	v.setDefaults()
	return nil
}

func (v *Options) internalOptions() *internal.Options {
	return &internal.Options{
		RestHostname:        v.RestHostname,
		HttpClientTimeout:   v.HttpClientTimeout,
		RecvWindow:          v.RecvWindow,
		MaxTimeAdjustment:   v.MaxTimeAdjustment,
		MaxFetchTimeLatency: v.MaxFetchTimeLatency,
		SyncTimeInterval:    v.SyncTimeInterval,
	}
}
