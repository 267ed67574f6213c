// Copyright (c) 2025 BVK Chaitanya

package internal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"testing"
)

var (
	testingKey    string
	testingSecret string
)

func checkCredentials() bool {
	type Credentials struct {
		Key    string
		Secret string
	}
	if len(testingKey) != 0 && len(testingSecret) != 0 {
		return true
	}
	data, err := os.ReadFile("binance-creds.json")
	if err != nil {
		return false
	}
	s := new(Credentials)
	if err := json.Unmarshal(data, s); err != nil {
		return false
	}
	testingKey = s.Key
	testingSecret = s.Secret
	return len(testingKey) != 0 && len(testingSecret) != 0
}

func TestCheckResponse(t *testing.T) {
	// Business errors arrive as a negative code with a message, regardless
	// of the HTTP status.
	err := checkResponse([]byte(`{"code":-1121,"msg":"Invalid symbol."}`), http.StatusBadRequest)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *Error, got %v", err)
	}
	if apiErr.Code != -1121 || apiErr.Message != "Invalid symbol." {
		t.Fatalf("unexpected error: %+v", apiErr)
	}

	if err := checkResponse([]byte(`{"code":-2019,"msg":"Margin is insufficient."}`), http.StatusOK); err == nil {
		t.Fatalf("negative code inside a 200 response must be an error")
	}

	if err := checkResponse([]byte(`{"orderId":123,"status":"NEW"}`), http.StatusOK); err != nil {
		t.Fatalf("valid success body reported as error: %v", err)
	}

	if err := checkResponse([]byte(`<html>gateway error</html>`), http.StatusBadGateway); err == nil {
		t.Fatalf("non-JSON failure body must be an error")
	} else if errors.As(err, &apiErr) {
		t.Fatalf("non-JSON body must not produce an api error: %v", err)
	}
}

func TestClient(t *testing.T) {
	if !checkCredentials() {
		t.Skip("no credentials")
		return
	}

	ctx := context.Background()

	c, err := New(ctx, testingKey, testingSecret, &Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			t.Fatal(err)
		}
	}()

	stime, err := c.GetServerTime(ctx)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("%#v", stime)

	price, err := c.GetTickerPrice(ctx, "BTCUSDT")
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("%#v", price)

	account, err := c.GetAccount(ctx)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("%#v", account)
}
