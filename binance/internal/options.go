// Copyright (c) 2025 BVK Chaitanya

package internal

import "time"

var (
	// RestHostname is the futures testnet endpoint. Production trading goes
	// through "fapi.binance.com".
	RestHostname = "testnet.binancefuture.com"
)

type Options struct {
	// Hostname for the REST service endpoint.
	RestHostname string

	// Timeout to use for the HTTP requests.
	HttpClientTimeout time.Duration

	// RecvWindow bounds the server-side acceptance window for signed
	// requests. Zero leaves the parameter out, which makes the exchange use
	// its default.
	RecvWindow time.Duration

	// Max time latency for fetching the server time from the exchange.
	MaxFetchTimeLatency time.Duration

	// Max limit for time difference between local time and the server time.
	MaxTimeAdjustment time.Duration

	// Time interval between server time refetches.
	SyncTimeInterval time.Duration

	// RateLimitPerSecond is the number of REST calls allowed per second.
	RateLimitPerSecond int
}

func (v *Options) setDefaults() {
	if v.RestHostname == "" {
		v.RestHostname = RestHostname
	}
	if v.HttpClientTimeout == 0 {
		v.HttpClientTimeout = 10 * time.Second
	}
	if v.RecvWindow == 0 {
		v.RecvWindow = 5 * time.Second
	}
	if v.MaxFetchTimeLatency == 0 {
		v.MaxFetchTimeLatency = 5 * time.Second
	}
	if v.MaxTimeAdjustment == 0 {
		v.MaxTimeAdjustment = time.Minute
	}
	if v.SyncTimeInterval == 0 {
		v.SyncTimeInterval = time.Minute
	}
	if v.RateLimitPerSecond == 0 {
		v.RateLimitPerSecond = 10
	}
}

func (v *Options) Check() error {
	v.setDefaults()
	return nil
}
