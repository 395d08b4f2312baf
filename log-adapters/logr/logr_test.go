// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elogr

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slog"
)

type line struct {
	Level int
	Err   bool
	Msg   string
	KV    []interface{}
}

// recorder is a LogSink that keeps what it is given.
type recorder struct {
	verbosity int
	lines     *[]line
}

func (r recorder) Init(logr.RuntimeInfo) {}
func (r recorder) Enabled(level int) bool { return level <= r.verbosity }
func (r recorder) WithValues(...interface{}) logr.LogSink { return r }
func (r recorder) WithName(string) logr.LogSink { return r }

func (r recorder) Info(level int, msg string, kv ...interface{}) {
	*r.lines = append(*r.lines, line{Level: level, Msg: msg, KV: kv})
}

func (r recorder) Error(err error, msg string, kv ...interface{}) {
	*r.lines = append(*r.lines, line{Err: true, Msg: msg, KV: kv})
}

func Test(t *testing.T) {
	var got []line
	log := slog.New(NewHandler(logr.New(recorder{verbosity: 1, lines: &got}))).With("op", "root")
	log.Debug("iterating", "step", 3)
	log.Warn("division by zero")
	log.WithGroup("arg").Error("undefined result", "exp", "0.5")

	want := []line{
		{Level: 1, Msg: "iterating", KV: []interface{}{"op", "root", "step", int64(3)}},
		{Level: 0, Msg: "division by zero", KV: []interface{}{"op", "root"}},
		{Err: true, Msg: "undefined result", KV: []interface{}{"op", "root", "arg.exp", "0.5"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestVerbosity(t *testing.T) {
	var got []line
	log := slog.New(NewHandler(logr.New(recorder{lines: &got})))
	log.Debug("dropped")
	log.Info("kept")
	if len(got) != 1 || got[0].Msg != "kept" {
		t.Errorf("got %+v, want only the info line", got)
	}
}
