// Copyright (c) 2025 BVK Chaitanya

package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bvk/binbot/ctxutil"
	"golang.org/x/time/rate"
)

type Client struct {
	lifeCtx    context.Context
	lifeCancel context.CancelCauseFunc

	wg sync.WaitGroup

	opts Options

	key, secret string

	client *http.Client

	limiter *rate.Limiter

	// timeAdjustment is positive when local time is found to be ahead of the
	// server time, in which case, this value must be subtracted from the
	// local time before the local time can be used as a timestamp in the
	// signature calculations.
	timeAdjustment atomic.Int64
}

func New(ctx context.Context, key, secret string, opts *Options) (*Client, error) {
	if opts == nil {
		opts = new(Options)
	}
	if err := opts.Check(); err != nil {
		return nil, err
	}

	// The first time fetch retries for a short while so that a transient
	// latency spike doesn't fail client creation.
	var stime time.Time
	fetch := func() error {
		v, err := getServerTime(ctx, opts)
		if err != nil {
			return err
		}
		stime = v
		return nil
	}
	if err := ctxutil.RetryTimeout(ctx, time.Second, opts.HttpClientTimeout, fetch); err != nil {
		return nil, fmt.Errorf("could not fetch exchange server time: %w", err)
	}
	adjustment := time.Since(stime)
	if adjustment >= opts.MaxTimeAdjustment || adjustment <= -opts.MaxTimeAdjustment {
		return nil, fmt.Errorf("local time is out-of-sync by %v with the server", adjustment)
	}

	lifeCtx, lifeCancel := context.WithCancelCause(context.Background())
	c := &Client{
		lifeCtx:    lifeCtx,
		lifeCancel: lifeCancel,

		opts:   *opts,
		key:    key,
		secret: secret,
		client: &http.Client{
			Timeout: opts.HttpClientTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(opts.RateLimitPerSecond), 1),
	}

	c.timeAdjustment.Store(int64(adjustment))
	c.wg.Add(1)
	go func() { c.goFindTimeAdjustment(c.lifeCtx); c.wg.Done() }()
	return c, nil
}

func (c *Client) Close() error {
	c.lifeCancel(os.ErrClosed)
	c.wg.Wait()
	return nil
}

// ServerNow returns the current epoch milliseconds adjusted to the exchange
// server's clock.
func (c *Client) ServerNow() int64 {
	adjustment := time.Duration(c.timeAdjustment.Load())
	return time.Now().Add(-adjustment).UnixMilli()
}

func (c *Client) goFindTimeAdjustment(ctx context.Context) {
	for ctxutil.Sleep(ctx, c.opts.SyncTimeInterval); ctx.Err() == nil; ctxutil.Sleep(ctx, c.opts.SyncTimeInterval) {
		stime, err := getServerTime(ctx, &c.opts)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				slog.Error("could not get server time (will retry)", "err", err)
			}
			continue
		}
		diff := time.Since(stime)
		c.timeAdjustment.Store(int64(diff))
		slog.Debug("updated local time adjustment", "adjustment", diff)
	}
}

// getServerTime returns the exchange server's current time.
func getServerTime(ctx context.Context, opts *Options) (time.Time, error) {
	var zero time.Time

	addrURL := fmt.Sprintf("https://%s/fapi/v1/time", opts.RestHostname)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addrURL, nil)
	if err != nil {
		return zero, err
	}
	client := http.Client{Timeout: opts.HttpClientTimeout}

	start := time.Now()
	resp, err := client.Do(req)
	stop := time.Now()
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return zero, fmt.Errorf("get time failed with status code %d", resp.StatusCode)
	}

	latency := stop.Sub(start)
	if latency > opts.MaxFetchTimeLatency {
		slog.Warn("get server time took too long", "latency", latency, "max-allowed", opts.MaxFetchTimeLatency)
		return zero, fmt.Errorf("get server time took too long (%v > %v)", latency, opts.MaxFetchTimeLatency)
	}

	var st ServerTimeResponse
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return zero, err
	}
	return time.UnixMilli(st.ServerUnixMilli).UTC().Add(latency / 2), nil
}

// checkResponse interprets an HTTP response as the exchange does: the body
// is always JSON, and a business failure is a negative `code` with a `msg`
// regardless of the HTTP status.
func checkResponse(data []byte, statusCode int) error {
	var e Error
	if err := json.Unmarshal(data, &e); err != nil {
		if statusCode != http.StatusOK {
			return fmt.Errorf("http request failed with status %d: %s", statusCode, data)
		}
		return fmt.Errorf("could not parse exchange response: %w", err)
	}
	if statusCode != http.StatusOK || e.Code < 0 {
		if e.Code == 0 {
			e.Code = -statusCode
		}
		return &e
	}
	return nil
}

func (c *Client) do(ctx context.Context, req *http.Request) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req.WithContext(ctx))
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Error("could not perform http request", "method", req.Method, "url", req.URL.Redacted(), "err", err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("could not read response body", "url", req.URL.Redacted(), "err", err)
		return nil, err
	}
	slog.Debug("received response", "status", resp.StatusCode, "body", string(data))

	if err := checkResponse(data, resp.StatusCode); err != nil {
		return nil, err
	}
	return data, nil
}

// publicGetJSON issues an unauthenticated GET request.
func publicGetJSON[PT *T, T any](ctx context.Context, c *Client, subpath string, values *Values, responsePtr PT) error {
	addrURL := &url.URL{
		Scheme: "https",
		Host:   c.opts.RestHostname,
		Path:   subpath,
	}
	if values != nil {
		addrURL.RawQuery = values.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addrURL.String(), nil)
	if err != nil {
		return err
	}

	slog.Debug("sending request", "method", http.MethodGet, "path", subpath, "params", addrURL.RawQuery)
	data, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, responsePtr); err != nil {
		slog.Error("could not decode response to json", "err", err)
		return err
	}
	return nil
}

// signedJSON signs values for the given method and path and issues the
// request. Parameters are logged before the timestamp and signature are
// attached; the signature, the API key, and the secret never reach the logs.
func signedJSON[PT *T, T any](ctx context.Context, c *Client, method, subpath string, values *Values, responsePtr PT) error {
	if values == nil {
		values = new(Values)
	}
	slog.Debug("sending signed request", "method", method, "path", subpath, "params", values.Encode())

	sreq := NewSignedRequest(c.secret, method, subpath, values, c.ServerNow(), c.opts.RecvWindow)
	req, err := sreq.HTTPRequest(c.opts.RestHostname, c.key)
	if err != nil {
		slog.Error("could not create http request object", "method", method, "path", subpath, "err", err)
		return err
	}

	data, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, responsePtr); err != nil {
		slog.Error("could not decode response to json", "err", err)
		return err
	}
	return nil
}

func (c *Client) GetServerTime(ctx context.Context) (*ServerTimeResponse, error) {
	resp := new(ServerTimeResponse)
	if err := publicGetJSON(ctx, c, "/fapi/v1/time", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetTickerPrice(ctx context.Context, symbol string) (*TickerPriceResponse, error) {
	values := new(Values)
	values.Set("symbol", symbol)

	resp := new(TickerPriceResponse)
	if err := publicGetJSON(ctx, c, "/fapi/v1/ticker/price", values, resp); err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Error("could not get ticker price", "symbol", symbol, "err", err)
		}
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetExchangeInfo(ctx context.Context) (*ExchangeInfoResponse, error) {
	resp := new(ExchangeInfoResponse)
	if err := publicGetJSON(ctx, c, "/fapi/v1/exchangeInfo", nil, resp); err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Error("could not get exchange info", "err", err)
		}
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetAccount(ctx context.Context) (*AccountResponse, error) {
	resp := new(AccountResponse)
	if err := signedJSON(ctx, c, http.MethodGet, "/fapi/v2/account", nil, resp); err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Error("could not get account information", "err", err)
		}
		return nil, err
	}
	return resp, nil
}
