// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package internal

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slog"
)

func TestCollect(t *testing.T) {
	var s State
	s = s.WithAttrs([]slog.Attr{slog.String("op", "pow")})
	s = s.WithGroup("arg").WithGroup("")
	s2 := s.WithAttrs([]slog.Attr{slog.Int("prec", 6)})

	r := slog.NewRecord(time.Time{}, slog.LevelWarn, "undefined result", 0)
	r.AddAttrs(
		slog.String("base", "-2"),
		slog.Group("exp", slog.String("int", "0"), slog.String("frac", "5")),
		slog.Group("", slog.Bool("inline", true)),
		slog.Attr{},
	)

	want := []interface{}{
		"op", "pow",
		"arg.prec", int64(6),
		"arg.base", "-2",
		"arg.exp.int", "0",
		"arg.exp.frac", "5",
		"arg.inline", true,
	}
	if diff := cmp.Diff(want, KeyValues(s2.Collect(r))); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
	// Deriving s2 leaves s alone.
	if got := len(KeyValues(s.Collect(slog.Record{}))); got != 2 {
		t.Errorf("parent state changed: %d values", got)
	}
}

func TestSeverityOf(t *testing.T) {
	for l, want := range map[slog.Level]Severity{
		slog.LevelDebug - 4: Debug,
		slog.LevelDebug:     Debug,
		slog.LevelInfo:      Info,
		slog.LevelInfo + 2:  Info,
		slog.LevelWarn:      Warn,
		slog.LevelError:     Error,
		slog.LevelError + 8: Error,
	} {
		if got := SeverityOf(l); got != want {
			t.Errorf("%v: wanted %d, got %d", l, want, got)
		}
	}
}
