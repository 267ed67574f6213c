// Copyright (c) 2025 BVK Chaitanya

package sglog

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBackend(t *testing.T) {
	dir := t.TempDir()

	var console bytes.Buffer
	b, err := NewBackend(&Options{LogDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()
	b.console = &console

	l := slog.New(b.Handler())
	l.Info("request issued", "method", "POST", "path", "/fapi/v1/order")
	l.Warn("validation failed", "field", "price")
	l.Debug("should be dropped by default")

	files, err := filepath.Glob(filepath.Join(dir, "*.log"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("want one log file, got %v", files)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `request issued method="POST"`) {
		t.Errorf("info message missing in log file: %s", data)
	}
	if strings.Contains(string(data), "should be dropped") {
		t.Errorf("debug message logged while disabled: %s", data)
	}

	if strings.Contains(console.String(), "request issued") {
		t.Errorf("info message mirrored to console: %s", console.String())
	}
	if !strings.Contains(console.String(), "validation failed") {
		t.Errorf("warning message not mirrored to console: %s", console.String())
	}

	b.EnableDebugLog()
	l.Debug("now visible")
	data, _ = os.ReadFile(files[0])
	if !strings.Contains(string(data), "now visible") {
		t.Errorf("debug message missing after EnableDebugLog: %s", data)
	}
}

func TestFileReuse(t *testing.T) {
	dir := t.TempDir()

	b1, err := NewBackend(&Options{LogDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	slog.New(b1.Handler()).Info("first run")
	b1.Close()

	b2, err := NewBackend(&Options{LogDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	slog.New(b2.Handler()).Info("second run")
	b2.Close()

	files, _ := filepath.Glob(filepath.Join(dir, "*.log"))
	if len(files) != 1 {
		t.Fatalf("want a reused log file, got %v", files)
	}
	data, _ := os.ReadFile(files[0])
	if !strings.Contains(string(data), "first run") || !strings.Contains(string(data), "second run") {
		t.Fatalf("both runs should share the log file: %s", data)
	}
}
