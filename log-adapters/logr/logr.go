// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elogr provides an slog.Handler that writes to a logr.Logger.
// Debug records are logged at V(1); errors through Logger.Error with a
// nil error.
package elogr

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/itsmanjeet/bignumber/log-adapters/internal"
	"golang.org/x/exp/slog"
)

type handler struct {
	logger logr.Logger
	state  internal.State
}

var _ slog.Handler = (*handler)(nil)

func NewHandler(l logr.Logger) slog.Handler {
	return &handler{logger: l}
}

func (h *handler) Enabled(_ context.Context, l slog.Level) bool {
	if internal.SeverityOf(l) == internal.Debug {
		return h.logger.V(1).Enabled()
	}
	return h.logger.Enabled()
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	kv := internal.KeyValues(h.state.Collect(r))
	switch internal.SeverityOf(r.Level) {
	case internal.Debug:
		h.logger.V(1).Info(r.Message, kv...)
	case internal.Error:
		h.logger.Error(nil, r.Message, kv...)
	default:
		h.logger.Info(r.Message, kv...)
	}
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
