// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Bigcalc evaluates decimal expressions at any precision.
//
// Usage:
//
//	bigcalc [-prec n] [-log backend] [-q] [expression]
//	bigcalc < expressions.txt
//
// An expression is "a op b" with op one of + - * / % ^ cmp, or one of
// "sqrt a", "inc a" and "dec a". Given no expression on the command line,
// bigcalc reads one per line from standard input, skipping blank lines
// and lines that start with #. Results are printed one per line. Lines
// that cannot be evaluated are reported on standard error, and bigcalc
// exits with status 1 once the input is done.
//
// Conditions such as division by zero are logged as diagnostics; -log
// selects the logger they go to and -q drops them.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/itsmanjeet/bignumber/decimal"
	"github.com/itsmanjeet/bignumber/diag"
	"golang.org/x/xerrors"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: bigcalc [flags] [a op b]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bigcalc: ")

	prec := flag.Int("prec", decimal.DefaultPrecision, "number of fraction `digits` in results")
	backend := flag.String("log", "text", "diagnostics `backend`: "+strings.Join(backends, ", "))
	quiet := flag.Bool("q", false, "discard diagnostics")
	flag.Usage = usage
	flag.Parse()

	if *quiet {
		diag.Discard()
	} else {
		l, err := newLogger(*backend, os.Stderr)
		if err != nil {
			log.Fatal(err)
		}
		diag.SetLogger(l)
	}

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		in = strings.NewReader(strings.Join(flag.Args(), " "))
	}
	if err := run(in, os.Stdout, os.Stderr, *prec); err != nil {
		log.Fatal(err)
	}
}

// run evaluates every expression in r, writing results to w and
// failures to errw.
func run(r io.Reader, w, errw io.Writer, prec int) error {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	failed, lineno := 0, 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res, err := eval(line, prec)
		if err != nil {
			failed++
			bw.Flush()
			fmt.Fprintf(errw, "line %d: %v\n", lineno, err)
			continue
		}
		fmt.Fprintln(bw, res)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return xerrors.Errorf("%d expression(s) failed", failed)
	}
	return nil
}

var errExpr = xerrors.New(`want "a op b" or "op a"`)

// eval evaluates a single expression.
func eval(line string, prec int) (string, error) {
	f := strings.Fields(line)
	switch len(f) {
	case 2:
		x, err := decimal.ParseWithPrecision(f[1], prec)
		if err != nil {
			return "", err
		}
		switch f[0] {
		case "sqrt":
			x = x.Sqrt()
		case "inc":
			x.Inc()
		case "dec":
			x.Dec()
		default:
			return "", xerrors.Errorf("unknown function %q", f[0])
		}
		return x.String(), nil
	case 3:
		x, err := decimal.ParseWithPrecision(f[0], prec)
		if err != nil {
			return "", err
		}
		y, err := decimal.ParseWithPrecision(f[2], prec)
		if err != nil {
			return "", err
		}
		switch f[1] {
		case "+":
			x = x.Add(y)
		case "-":
			x = x.Sub(y)
		case "*":
			x = x.Mul(y)
		case "/":
			x = x.Quo(y)
		case "%":
			x = x.Rem(y)
		case "^":
			x = x.Pow(y)
		case "cmp":
			return fmt.Sprint(x.Cmp(y)), nil
		default:
			return "", xerrors.Errorf("unknown operator %q", f[1])
		}
		return x.String(), nil
	}
	return "", xerrors.Errorf("%q: %w", line, errExpr)
}
