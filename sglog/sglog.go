// Copyright (c) 2025 BVK Chaitanya

// Package sglog provides a log/slog handler that writes glog-style log lines
// to a dated, size-limited log file and mirrors important messages to the
// console.
//
// A new log file is created per day (with an option to reuse a recent file so
// that a crash-looping process doesn't exhaust filesystem inodes) and rotated
// when it grows past the configured size limit. Messages at or above the
// ConsoleLevel are also written to stderr.
package sglog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type Options struct {
	// LogDir if non-empty, log files are created in this directory.
	LogDir string

	// LogFileMaxSize is the maximum size of a log file in bytes.
	LogFileMaxSize int64

	// LogFileMode is the log file mode/permissions.
	LogFileMode os.FileMode

	// ReuseFileDuration is the maximum age of the newest existing log file
	// that will be appended-to instead of creating a new file.
	ReuseFileDuration time.Duration

	// ConsoleLevel is the minimum level mirrored to stderr.
	ConsoleLevel slog.Level
}

func (v *Options) setDefaults() {
	if v.LogDir == "" {
		v.LogDir = os.TempDir()
	}
	if v.LogFileMaxSize == 0 {
		v.LogFileMaxSize = 100 * 1024 * 1024
	}
	if v.LogFileMode == 0 {
		v.LogFileMode = 0600
	}
	if v.ReuseFileDuration == 0 {
		v.ReuseFileDuration = time.Hour
	}
	if v.ConsoleLevel == 0 {
		v.ConsoleLevel = slog.LevelWarn
	}
}

type Backend struct {
	mu sync.Mutex

	opts Options

	fp   *os.File
	size int64

	console io.Writer

	currentLevel slog.LevelVar
}

// NewBackend creates a slog backend writing to log files in opts.LogDir.
func NewBackend(opts *Options) (*Backend, error) {
	if opts == nil {
		opts = new(Options)
	}
	opts.setDefaults()

	v := &Backend{
		opts:    *opts,
		console: os.Stderr,
	}
	v.currentLevel.Set(slog.LevelInfo)
	if err := v.openFile(time.Now()); err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	return v, nil
}

// Close flushes and closes the current log file.
func (v *Backend) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.fp != nil {
		v.fp.Close()
		v.fp = nil
	}
}

// Handler returns the slog.Handler for the log backend.
func (v *Backend) Handler() slog.Handler {
	return &slogHandler{backend: v}
}

// EnableDebugLog enables logging for slog.LevelDebug messages.
func (v *Backend) EnableDebugLog() {
	v.currentLevel.Set(slog.LevelDebug)
}

// DisableDebugLog disables logging for slog.LevelDebug messages.
func (v *Backend) DisableDebugLog() {
	v.currentLevel.Set(slog.LevelInfo)
}

func logFileName(t time.Time) string {
	program := filepath.Base(os.Args[0])
	return fmt.Sprintf("%s.%s.log", program, t.Format("20060102-150405"))
}

// openFile opens the log file for the given time, reusing the newest
// existing log file when it is younger than ReuseFileDuration and below the
// size limit.
func (v *Backend) openFile(now time.Time) error {
	entries, _ := os.ReadDir(v.opts.LogDir)
	var newest string
	var newestInfo os.FileInfo
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".log" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if newestInfo == nil || info.ModTime().After(newestInfo.ModTime()) {
			newest, newestInfo = e.Name(), info
		}
	}

	if newestInfo != nil &&
		now.Sub(newestInfo.ModTime()) < v.opts.ReuseFileDuration &&
		newestInfo.Size() < v.opts.LogFileMaxSize {
		fp, err := os.OpenFile(filepath.Join(v.opts.LogDir, newest), os.O_WRONLY|os.O_APPEND, v.opts.LogFileMode)
		if err == nil {
			v.fp, v.size = fp, newestInfo.Size()
			return nil
		}
	}

	fpath := filepath.Join(v.opts.LogDir, logFileName(now))
	fp, err := os.OpenFile(fpath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, v.opts.LogFileMode)
	if err != nil {
		return err
	}
	v.fp, v.size = fp, 0
	fmt.Fprintf(fp, "Log file created at: %s\nRunning on machine as pid %d\n",
		now.Format("2006/01/02 15:04:05"), os.Getpid())
	return nil
}

func (v *Backend) emit(level slog.Level, msg []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.fp == nil {
		return os.ErrClosed
	}
	if v.size >= v.opts.LogFileMaxSize {
		v.fp.Close()
		if err := v.openFile(time.Now()); err != nil {
			return err
		}
	}
	n, err := v.fp.Write(msg)
	v.size += int64(n)
	if err != nil {
		return err
	}

	if level >= v.opts.ConsoleLevel {
		v.console.Write(msg)
	}
	return nil
}
