// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diag records non-fatal conditions met while doing decimal
// arithmetic: malformed input, failed conversions, division by zero and
// operations on NaN or Infinity.
//
// Reporting is fire-and-forget. It never changes the outcome of the
// operation that reports.
package diag

import (
	"os"
	"sync"

	"golang.org/x/exp/slog"
)

var (
	mu     sync.Mutex
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

// SetLogger sets the logger used by Report. A nil logger discards all
// reports.
func SetLogger(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Logger returns the logger used by Report.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Discard drops all further reports.
func Discard() {
	SetLogger(nil)
}

// Report logs msg at warning level, with args as alternating keys and
// values in the manner of slog.Logger.Warn.
func Report(msg string, args ...any) {
	if l := Logger(); l != nil {
		l.Warn(msg, args...)
	}
}
