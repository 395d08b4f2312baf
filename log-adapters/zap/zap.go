// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ezap provides an slog.Handler that writes to a zap.Logger.
package ezap

import (
	"context"

	"github.com/itsmanjeet/bignumber/log-adapters/internal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/slog"
)

type handler struct {
	logger *zap.Logger
	state  internal.State
}

var _ slog.Handler = (*handler)(nil)

// NewHandler returns a handler that logs through l.
func NewHandler(l *zap.Logger) slog.Handler {
	return &handler{logger: l}
}

func (h *handler) Enabled(_ context.Context, l slog.Level) bool {
	return h.logger.Core().Enabled(zapLevel(l))
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	ce := h.logger.Check(zapLevel(r.Level), r.Message)
	if ce == nil {
		return nil
	}
	if !r.Time.IsZero() {
		ce.Time = r.Time
	}
	attrs := h.state.Collect(r)
	fs := make([]zap.Field, len(attrs))
	for i, a := range attrs {
		fs[i] = zap.Any(a.Key, a.Value.Any())
	}
	ce.Write(fs...)
	return nil
}

func (h *handler) WithAttrs(as []slog.Attr) slog.Handler {
	h2 := *h
	h2.state = h.state.WithAttrs(as)
	return &h2
}

func (h *handler) WithGroup(name string) slog.Handler {
	h2 := *h
	h2.state = h.state.WithGroup(name)
	return &h2
}

func zapLevel(l slog.Level) zapcore.Level {
	switch internal.SeverityOf(l) {
	case internal.Debug:
		return zapcore.DebugLevel
	case internal.Info:
		return zapcore.InfoLevel
	case internal.Warn:
		return zapcore.WarnLevel
	}
	return zapcore.ErrorLevel
}
