// Copyright (c) 2025 BVK Chaitanya

package internal

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// SignedRequest describes one fully-formed, ready-to-transmit HTTP request.
// It is created immediately before transmission and is never reused; the
// exchange rejects replays through its timestamp check.
type SignedRequest struct {
	Method string
	Path   string

	// Values is the ordered parameter sequence with timestamp, recvWindow,
	// and the trailing signature pair included.
	Values *Values

	Timestamp int64
}

// Signature computes the lowercase-hex HMAC-SHA256 digest of payload keyed
// by secret.
func Signature(secret, payload string) string {
	hash := hmac.New(sha256.New, []byte(secret))
	io.WriteString(hash, payload)
	return hex.EncodeToString(hash.Sum(nil))
}

// SignValues appends recvWindow (when positive) and the given timestamp to a
// copy of values, computes the signature over the serialized byte sequence,
// and appends it as the final pair. The input values are not modified.
func SignValues(secret string, values *Values, timestamp int64, recvWindow time.Duration) *Values {
	signed := values.Clone()
	if recvWindow > 0 {
		signed.Set("recvWindow", strconv.FormatInt(recvWindow.Milliseconds(), 10))
	}
	signed.Set("timestamp", strconv.FormatInt(timestamp, 10))
	signed.Set("signature", Signature(secret, signed.Encode()))
	return signed
}

// NewSignedRequest signs values for the given method and path at the given
// timestamp.
func NewSignedRequest(secret, method, path string, values *Values, timestamp int64, recvWindow time.Duration) *SignedRequest {
	return &SignedRequest{
		Method:    method,
		Path:      path,
		Values:    SignValues(secret, values, timestamp, recvWindow),
		Timestamp: timestamp,
	}
}

// HTTPRequest converts the signed request into an http.Request against the
// given hostname. GET and DELETE requests carry the parameters in the query
// string; POST requests carry them form-encoded in the body, matching the
// byte sequence that was signed. The API key travels only in the
// X-MBX-APIKEY header.
func (r *SignedRequest) HTTPRequest(hostname, apiKey string) (*http.Request, error) {
	encoded := r.Values.Encode()

	var req *http.Request
	var err error
	switch r.Method {
	case http.MethodPost, http.MethodPut:
		url := "https://" + hostname + r.Path
		req, err = http.NewRequest(r.Method, url, strings.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	default:
		url := "https://" + hostname + r.Path + "?" + encoded
		req, err = http.NewRequest(r.Method, url, nil)
		if err != nil {
			return nil, err
		}
	}
	req.Header.Set("X-MBX-APIKEY", apiKey)
	return req, nil
}
