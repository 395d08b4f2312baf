// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ezerolog provides an slog.Handler that writes to a zerolog.Logger.
package ezerolog

import (
	"context"

	"github.com/itsmanjeet/bignumber/log-adapters/internal"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slog"
)

type handler struct {
	logger zerolog.Logger
	state  internal.State
}

var _ slog.Handler = (*handler)(nil)

func NewHandler(l zerolog.Logger) slog.Handler {
	return &handler{logger: l}
}

func (h *handler) Enabled(_ context.Context, l slog.Level) bool {
	lvl := zerologLevel(l)
	return lvl >= h.logger.GetLevel() && lvl >= zerolog.GlobalLevel()
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	e := h.logger.WithLevel(zerologLevel(r.Level))
	if e == nil {
		return nil
	}
	for _, a := range h.state.Collect(r) {
		e = e.Interface(a.Key, a.Value.Any())
	}
	e.Msg(r.Message)
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

func zerologLevel(l slog.Level) zerolog.Level {
	switch internal.SeverityOf(l) {
	case internal.Debug:
		return zerolog.DebugLevel
	case internal.Info:
		return zerolog.InfoLevel
	case internal.Warn:
		return zerolog.WarnLevel
	}
	return zerolog.ErrorLevel
}
