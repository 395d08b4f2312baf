// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elogrus provides an slog.Handler that writes to a logrus.Logger.
// To route diagnostics through the standard logger:
//
//	diag.SetLogger(slog.New(elogrus.NewHandler(logrus.StandardLogger())))
package elogrus

import (
	"context"

	"github.com/itsmanjeet/bignumber/log-adapters/internal"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slog"
)

type handler struct {
	logger *logrus.Logger
	state  internal.State
}

var _ slog.Handler = (*handler)(nil)

func NewHandler(l *logrus.Logger) slog.Handler {
	return &handler{logger: l}
}

func (h *handler) Enabled(_ context.Context, l slog.Level) bool {
	return h.logger.IsLevelEnabled(logrusLevel(l))
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	attrs := h.state.Collect(r)
	fields := make(logrus.Fields, len(attrs))
	for _, a := range attrs {
		fields[a.Key] = a.Value.Any()
	}
	e := h.logger.WithFields(fields)
	if !r.Time.IsZero() {
		e = e.WithTime(r.Time)
	}
	e.Log(logrusLevel(r.Level), r.Message)
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

func logrusLevel(l slog.Level) logrus.Level {
	switch internal.SeverityOf(l) {
	case internal.Debug:
		return logrus.DebugLevel
	case internal.Info:
		return logrus.InfoLevel
	case internal.Warn:
		return logrus.WarnLevel
	}
	return logrus.ErrorLevel
}
