// Copyright (c) 2025 BVK Chaitanya

package internal

import (
	"net/url"
	"strings"
)

// Values holds request parameters as an explicit ordered sequence of
// key-value pairs. The exchange's signature scheme is sensitive to parameter
// order, so parameters are serialized in insertion order and are never kept
// in an unordered map.
type Values struct {
	pairs []pair
}

type pair struct {
	key, value string
}

// Set appends a key-value pair, replacing the value in place when the key is
// already present.
func (v *Values) Set(key, value string) {
	for i := range v.pairs {
		if v.pairs[i].key == key {
			v.pairs[i].value = value
			return
		}
	}
	v.pairs = append(v.pairs, pair{key: key, value: value})
}

// Get returns the value for the given key.
func (v *Values) Get(key string) (string, bool) {
	for i := range v.pairs {
		if v.pairs[i].key == key {
			return v.pairs[i].value, true
		}
	}
	return "", false
}

// Delete removes the pair with the given key, preserving the order of the
// remaining pairs.
func (v *Values) Delete(key string) {
	for i := range v.pairs {
		if v.pairs[i].key == key {
			v.pairs = append(v.pairs[:i], v.pairs[i+1:]...)
			return
		}
	}
}

// Len returns the number of pairs.
func (v *Values) Len() int {
	return len(v.pairs)
}

// Clone returns an independent copy.
func (v *Values) Clone() *Values {
	c := &Values{pairs: make([]pair, len(v.pairs))}
	copy(c.pairs, v.pairs)
	return c
}

// Encode serializes the pairs as a query string in insertion order.
func (v *Values) Encode() string {
	var sb strings.Builder
	for i, p := range v.pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}
	return sb.String()
}
