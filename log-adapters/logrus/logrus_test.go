// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elogrus

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/exp/slog"
)

func Test(t *testing.T) {
	l, hook := test.NewNullLogger()
	log := slog.New(NewHandler(l)).With("op", "pow")
	log.WithGroup("arg").Warn("undefined result", "base", "-2", "exp", "0.5")

	e := hook.LastEntry()
	if e == nil {
		t.Fatal("no entry")
	}
	if e.Message != "undefined result" {
		t.Errorf("message: got %q", e.Message)
	}
	if e.Level != logrus.WarnLevel {
		t.Errorf("level: got %v, want %v", e.Level, logrus.WarnLevel)
	}
	want := logrus.Fields{
		"op":       "pow",
		"arg.base": "-2",
		"arg.exp":  "0.5",
	}
	if diff := cmp.Diff(want, e.Data); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestEnabled(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.ErrorLevel)
	log := slog.New(NewHandler(l))
	log.Info("dropped")
	log.Error("kept")
	if n := len(hook.AllEntries()); n != 1 {
		t.Fatalf("got %d entries, want 1", n)
	}
	if got := hook.LastEntry().Message; got != "kept" {
		t.Errorf("got %q, want %q", got, "kept")
	}
}
