// Copyright (c) 2025 BVK Chaitanya

package kvutil

import (
	"context"
	"testing"

	"github.com/bvkgo/kv"
	"github.com/bvkgo/kv/kvmemdb"
)

type item struct {
	Name  string
	Count int
}

func TestSetGet(t *testing.T) {
	ctx := context.Background()
	db := kvmemdb.New()

	want := &item{Name: "one", Count: 1}
	if err := SetDB(ctx, db, "/items/one", want); err != nil {
		t.Fatal(err)
	}
	got, err := GetDB[item](ctx, db, "/items/one")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != want.Name || got.Count != want.Count {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestAscendRange(t *testing.T) {
	ctx := context.Background()
	db := kvmemdb.New()

	keys := []string{"/items/a", "/items/b", "/items/c", "/other/z"}
	for i, k := range keys {
		if err := SetDB(ctx, db, k, &item{Name: k, Count: i}); err != nil {
			t.Fatal(err)
		}
	}

	begin, end := PathRange("/items")
	var got []string
	err := AscendDB(ctx, db, begin, end, func(ctx context.Context, r kv.Reader, key string, v *item) error {
		got = append(got, key)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("wanted 3 keys under /items, got %v", got)
	}
	for i, k := range got {
		if i > 0 && got[i-1] >= k {
			t.Errorf("keys are not in ascending order: %v", got)
		}
		if k == "/other/z" {
			t.Errorf("path range leaked outside /items: %v", got)
		}
	}
}
