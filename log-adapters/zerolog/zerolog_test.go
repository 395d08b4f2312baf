// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ezerolog

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slog"
)

func Test(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(zerolog.New(&buf))).With("op", "parse")
	log.WithGroup("arg").Warn("invalid syntax", "input", "1.2.3", "pos", 3)

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("%v: %q", err, buf.String())
	}
	want := map[string]interface{}{
		"level":     "warn",
		"message":   "invalid syntax",
		"op":        "parse",
		"arg.input": "1.2.3",
		"arg.pos":   float64(3),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestEnabled(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(zerolog.New(&buf).Level(zerolog.ErrorLevel)))
	log.Warn("dropped")
	if buf.Len() != 0 {
		t.Errorf("got output %q, want none", buf.String())
	}
	log.Error("kept")
	if !bytes.Contains(buf.Bytes(), []byte(`"kept"`)) {
		t.Errorf("got %q, want the error message", buf.String())
	}
}
