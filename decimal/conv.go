package decimal

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// NewFromInt64 returns v as a Decimal.
func NewFromInt64(v int64) Decimal {
	s := strconv.FormatInt(v, 10)
	if v < 0 {
		return Decimal{neg: true, intg: s[1:]}
	}
	return Decimal{intg: s}
}

// NewFromFloat64 returns v as a Decimal, by way of its shortest decimal
// text. The fraction is rounded to DefaultPrecision digits. NaN becomes
// the NaN sentinel and both infinities the Infinity sentinel.
//
// Remember floating-point to decimal conversions can be lossy. For
// example, 0.1 is stored in a float64 as
// 0.1000000000000000055511151231257827021181583404541015625, and the
// closest shortest text for it is taken to be "0.1".
func NewFromFloat64(v float64) Decimal {
	switch {
	case math.IsNaN(v):
		return NaN()
	case math.IsInf(v, 0):
		return Inf()
	}
	d, _ := Parse(strconv.FormatFloat(v, 'f', -1, 64))
	return d
}

// Int64 returns the integer part of d as an int64. The boolean is false,
// and the failure reported, if d is a sentinel or out of range.
func (d Decimal) Int64() (int64, bool) {
	if d.form != finite {
		report("int64", xerrors.Errorf("%s to int64: %w", d, ErrConversion))
		return 0, false
	}
	s := d.IntPart()
	if d.neg && s != "0" {
		s = "-" + s
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		report("int64", xerrors.Errorf("%s to int64: %v: %w", d, err, ErrConversion))
		return 0, false
	}
	return v, true
}

// Float64 returns the float64 nearest to d. NaN and Infinity convert to
// their float64 counterparts. The boolean is false, and the failure
// reported, if d is out of the float64 range.
func (d Decimal) Float64() (float64, bool) {
	v, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		report("float64", xerrors.Errorf("%s to float64: %v: %w", d, err, ErrConversion))
		return 0, false
	}
	return v, true
}

// String returns d as [-]digits[.digits], or NAN or INFINITY.
// Zero is rendered as 0.
func (d Decimal) String() string {
	switch d.form {
	case nan:
		return nanText
	case inf:
		return infText
	}
	var b strings.Builder
	if d.neg && !d.IsZero() {
		b.WriteByte('-')
	}
	b.WriteString(d.IntPart())
	if d.frac != "" {
		b.WriteByte('.')
		b.WriteString(d.frac)
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. d keeps its
// precision. On error d is set to zero, as with SetString.
func (d *Decimal) UnmarshalText(data []byte) error {
	x, err := parse(string(data), d.prec)
	*d = x
	return err
}
