// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package egokit provides an slog.Handler that writes to a go-kit logger.
// Records are logged as "level", "msg" and then the attributes.
package egokit

import (
	"context"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/itsmanjeet/bignumber/log-adapters/internal"
	"golang.org/x/exp/slog"
)

type handler struct {
	logger log.Logger
	state  internal.State
}

var _ slog.Handler = (*handler)(nil)

func NewHandler(l log.Logger) slog.Handler {
	return &handler{logger: l}
}

// Enabled always reports true; filter with level.NewFilter instead.
func (h *handler) Enabled(context.Context, slog.Level) bool { return true }

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	kv := append([]interface{}{"msg", r.Message}, internal.KeyValues(h.state.Collect(r))...)
	var l log.Logger
	switch internal.SeverityOf(r.Level) {
	case internal.Debug:
		l = level.Debug(h.logger)
	case internal.Info:
		l = level.Info(h.logger)
	case internal.Warn:
		l = level.Warn(h.logger)
	default:
		l = level.Error(h.logger)
	}
	return l.Log(kv...)
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
