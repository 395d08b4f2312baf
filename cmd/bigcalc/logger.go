// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-logr/logr/funcr"
	ekit "github.com/itsmanjeet/bignumber/log-adapters/go-kit"
	elogr "github.com/itsmanjeet/bignumber/log-adapters/logr"
	elogrus "github.com/itsmanjeet/bignumber/log-adapters/logrus"
	ezap "github.com/itsmanjeet/bignumber/log-adapters/zap"
	ezerolog "github.com/itsmanjeet/bignumber/log-adapters/zerolog"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/slog"
	"golang.org/x/xerrors"
)

var backends = []string{"text", "json", "zap", "logrus", "zerolog", "gokit", "logr"}

// newLogger returns a logger for the named backend writing to w.
func newLogger(backend string, w io.Writer) (*slog.Logger, error) {
	var h slog.Handler
	switch backend {
	case "text":
		h = slog.NewTextHandler(w, nil)
	case "json":
		h = slog.NewJSONHandler(w, nil)
	case "zap":
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		h = ezap.NewHandler(zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)))
	case "logrus":
		l := logrus.New()
		l.SetOutput(w)
		h = elogrus.NewHandler(l)
	case "zerolog":
		h = ezerolog.NewHandler(zerolog.New(w).With().Timestamp().Logger())
	case "gokit":
		l := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
		h = ekit.NewHandler(kitlog.With(l, "ts", kitlog.DefaultTimestampUTC))
	case "logr":
		h = elogr.NewHandler(funcr.New(func(prefix, args string) {
			fmt.Fprintln(w, args)
		}, funcr.Options{}))
	default:
		return nil, xerrors.Errorf("unknown log backend %q", backend)
	}
	return slog.New(h), nil
}
