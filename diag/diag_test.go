// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/exp/slog"
)

func swap(t *testing.T, l *slog.Logger) {
	old := Logger()
	SetLogger(l)
	t.Cleanup(func() { SetLogger(old) })
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	swap(t, slog.New(slog.NewTextHandler(&buf, nil)))

	Report("division by zero", "op", "quo")

	got := buf.String()
	for _, want := range []string{"level=WARN", `msg="division by zero"`, "op=quo"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q does not contain %q", got, want)
		}
	}
}

func TestDiscard(t *testing.T) {
	swap(t, Logger())
	Discard()
	if Logger() != nil {
		t.Fatal("Discard left a logger in place")
	}
	// Must not panic.
	Report("ignored")
}

func TestReportLevel(t *testing.T) {
	var buf bytes.Buffer
	swap(t, slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError})))

	Report("below the handler's level")
	if buf.Len() != 0 {
		t.Errorf("got output %q, want none", buf.String())
	}
}
