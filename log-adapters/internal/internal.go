// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package internal holds what the slog handlers in log-adapters share:
// the attributes and groups collected through WithAttrs and WithGroup,
// and a coarse mapping of slog levels.
package internal

import (
	"golang.org/x/exp/slog"
)

// Severity is the level scale common to all the wrapped loggers.
type Severity int

const (
	Debug Severity = iota
	Info
	Warn
	Error
)

// SeverityOf buckets an slog level.
func SeverityOf(l slog.Level) Severity {
	switch {
	case l < slog.LevelInfo:
		return Debug
	case l < slog.LevelWarn:
		return Info
	case l < slog.LevelError:
		return Warn
	}
	return Error
}

// State is the context a handler accumulates through WithAttrs and
// WithGroup. Its zero value is ready to use. Groups are flattened into
// dotted key prefixes, since none of the wrapped loggers has groups.
type State struct {
	attrs  []slog.Attr
	prefix string
}

// WithAttrs returns s with as appended under the open groups.
func (s State) WithAttrs(as []slog.Attr) State {
	attrs := s.attrs[:len(s.attrs):len(s.attrs)]
	for _, a := range as {
		attrs = appendAttr(attrs, s.prefix, a)
	}
	s.attrs = attrs
	return s
}

// WithGroup returns s with group name opened.
func (s State) WithGroup(name string) State {
	if name != "" {
		s.prefix += name + "."
	}
	return s
}

// Collect returns the attributes of s followed by those of r.
func (s State) Collect(r slog.Record) []slog.Attr {
	attrs := make([]slog.Attr, len(s.attrs), len(s.attrs)+r.NumAttrs())
	copy(attrs, s.attrs)
	r.Attrs(func(a slog.Attr) bool {
		attrs = appendAttr(attrs, s.prefix, a)
		return true
	})
	return attrs
}

func appendAttr(attrs []slog.Attr, prefix string, a slog.Attr) []slog.Attr {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p += a.Key + "."
		}
		for _, g := range a.Value.Group() {
			attrs = appendAttr(attrs, p, g)
		}
		return attrs
	}
	if a.Key == "" {
		return attrs
	}
	a.Key = prefix + a.Key
	return append(attrs, a)
}

// KeyValues returns attrs as alternating keys and values.
func KeyValues(attrs []slog.Attr) []interface{} {
	kv := make([]interface{}, 0, 2*len(attrs))
	for _, a := range attrs {
		kv = append(kv, a.Key, a.Value.Any())
	}
	return kv
}
