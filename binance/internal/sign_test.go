// Copyright (c) 2025 BVK Chaitanya

package internal

import (
	"net/http"
	"strings"
	"testing"
	"time"
)

const testSecret = "2b5eb11e18796d12d88f13dc27dbbd02c2cc51ff7059765ed9821957d82bb4d9"

func newOrderValues() *Values {
	v := new(Values)
	v.Set("symbol", "BTCUSDT")
	v.Set("side", "BUY")
	v.Set("type", "MARKET")
	v.Set("quantity", "0.01")
	v.Set("positionSide", "BOTH")
	return v
}

func TestSignatureVector(t *testing.T) {
	payload := "symbol=BTCUSDT&side=BUY&type=MARKET&quantity=0.01&positionSide=BOTH&recvWindow=5000&timestamp=1700000000000"
	want := "b25ee36f3b706b89c9d8cf962444b72e509724d7403290d3d50f188890d16e40"
	if got := Signature(testSecret, payload); got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestSignValues(t *testing.T) {
	const timestamp = int64(1700000000000)

	signed := SignValues(testSecret, newOrderValues(), timestamp, 5*time.Second)

	want := "symbol=BTCUSDT&side=BUY&type=MARKET&quantity=0.01&positionSide=BOTH&recvWindow=5000&timestamp=1700000000000&signature=b25ee36f3b706b89c9d8cf962444b72e509724d7403290d3d50f188890d16e40"
	if got := signed.Encode(); got != want {
		t.Fatalf("want %s, got %s", want, got)
	}

	// Signing must be deterministic for identical inputs.
	again := SignValues(testSecret, newOrderValues(), timestamp, 5*time.Second)
	if signed.Encode() != again.Encode() {
		t.Fatalf("repeated signing produced different payloads")
	}

	// Input values must not be modified.
	if v := newOrderValues(); v.Encode() != newOrderValues().Encode() {
		t.Fatalf("input values were mutated")
	}
}

func TestSignatureOrderSensitivity(t *testing.T) {
	if Signature("testsecret", "a=1&b=2") == Signature("testsecret", "b=2&a=1") {
		t.Fatalf("signature must depend on parameter order")
	}

	const timestamp = int64(1700000000000)
	base := SignValues(testSecret, newOrderValues(), timestamp, 0)

	changed := newOrderValues()
	changed.Set("quantity", "0.02")
	other := SignValues(testSecret, changed, timestamp, 0)

	s1, _ := base.Get("signature")
	s2, _ := other.Get("signature")
	if s1 == s2 {
		t.Fatalf("changing a parameter value must change the signature")
	}

	later := SignValues(testSecret, newOrderValues(), timestamp+1, 0)
	s3, _ := later.Get("signature")
	if s1 == s3 {
		t.Fatalf("a different timestamp must change the signature")
	}
}

func TestSignatureRoundTrip(t *testing.T) {
	signed := SignValues(testSecret, newOrderValues(), time.Now().UnixMilli(), 5*time.Second)

	sig, ok := signed.Get("signature")
	if !ok {
		t.Fatalf("signature pair missing")
	}
	stripped := signed.Clone()
	stripped.Delete("signature")
	if got := Signature(testSecret, stripped.Encode()); got != sig {
		t.Fatalf("recomputed signature %s does not match original %s", got, sig)
	}
}

func TestSignedRequestHTTP(t *testing.T) {
	sreq := NewSignedRequest(testSecret, http.MethodPost, orderPath, newOrderValues(), 1700000000000, 0)

	req, err := sreq.HTTPRequest("testnet.binancefuture.com", "test-api-key")
	if err != nil {
		t.Fatal(err)
	}
	if req.Header.Get("X-MBX-APIKEY") != "test-api-key" {
		t.Errorf("api key header missing")
	}
	if req.URL.RawQuery != "" {
		t.Errorf("POST parameters must travel in the body, got query %q", req.URL.RawQuery)
	}
	if ct := req.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
		t.Errorf("unexpected content type %q", ct)
	}

	get, err := NewSignedRequest(testSecret, http.MethodGet, orderPath, newOrderValues(), 1700000000000, 0).
		HTTPRequest("testnet.binancefuture.com", "test-api-key")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(get.URL.RawQuery, "signature=") {
		t.Errorf("GET parameters must travel in the query string, got %q", get.URL.RawQuery)
	}
}

func TestValues(t *testing.T) {
	v := new(Values)
	v.Set("b", "2")
	v.Set("a", "1")
	v.Set("b", "3")
	if got := v.Encode(); got != "b=3&a=1" {
		t.Fatalf("want b=3&a=1, got %s", got)
	}
	v.Delete("b")
	if got := v.Encode(); got != "a=1" {
		t.Fatalf("want a=1, got %s", got)
	}
	v.Set("q", "1 2")
	if got := v.Encode(); got != "a=1&q=1+2" {
		t.Fatalf("want a=1&q=1+2, got %s", got)
	}
}
