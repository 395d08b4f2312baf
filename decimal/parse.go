package decimal

import (
	"strings"

	"github.com/itsmanjeet/bignumber/decimal/internal/arith"
	"golang.org/x/xerrors"
)

// Parse converts s to a Decimal with the default precision. s must be in
// one of the following formats:
//
//	1234
//	-1234
//	1.234
//	-0.001234
//	NAN
//	INFINITY
//
// Leading zeros of the integer part and trailing zeros of the fraction
// are dropped, and the fraction is rounded to DefaultPrecision digits.
// On failure Parse returns the zero value and a *ParseError, and reports
// the failure to the diag package.
func Parse(s string) (Decimal, error) {
	return parse(s, 0)
}

// ParseWithPrecision is like Parse but rounds to, and keeps, precision
// prec.
func ParseWithPrecision(s string, prec int) (Decimal, error) {
	return parse(s, storePrecision(prec))
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// SetString sets d to the value of s, in the formats accepted by Parse,
// and returns d and a boolean indicating success. d keeps its precision.
// On failure d is set to zero.
func (d *Decimal) SetString(s string) (*Decimal, bool) {
	x, err := parse(s, d.prec)
	*d = x
	return d, err == nil
}

func parse(s string, prec int32) (Decimal, error) {
	d := Decimal{prec: prec}
	switch s {
	case nanText:
		d.form = nan
		return d, nil
	case infText:
		d.form = inf
		return d, nil
	}

	if err := validate(s); err != nil {
		err = &ParseError{Input: s, Err: err}
		report("parse", err)
		return d, err
	}
	n := arith.Number{Int: s}
	if s[0] == '-' {
		n.Neg = true
		n.Int = s[1:]
	}
	n.Int, n.Frac = arith.SplitPoint(n.Int)
	return d.wrap(n), nil
}

// validate checks s against -?[0-9]+(\.[0-9]+)?
func validate(s string) error {
	t := strings.TrimPrefix(s, "-")
	if t == "" {
		return xerrors.Errorf("no digits: %w", ErrSyntax)
	}
	point := -1
	for i := 0; i < len(t); i++ {
		switch c := t[i]; {
		case c == '.' && point >= 0:
			return xerrors.Errorf("more than one decimal point: %w", ErrSyntax)
		case c == '.':
			point = i
		case c < '0' || c > '9':
			return xerrors.Errorf("invalid character %q: %w", c, ErrSyntax)
		}
	}
	switch point {
	case 0:
		return xerrors.Errorf("no integer digits: %w", ErrSyntax)
	case len(t) - 1:
		return xerrors.Errorf("no fraction digits: %w", ErrSyntax)
	}
	return nil
}
