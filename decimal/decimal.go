// Package decimal provides arbitrary-precision decimal numbers that are
// computed on strings of digits, never on fixed-width machine numbers.
//
// The following type is supported:
//
//	Decimal, a signed number with unbounded integer and fraction digits
//
// The zero value for a Decimal corresponds with 0. Decimals are values:
// every arithmetic method leaves its receiver and arguments alone and
// returns a new Decimal, rounded half to even to the receiver's
// precision. Only the pointer methods (Inc, Dec, SetPrecision,
// SetString and UnmarshalText) change a Decimal in place.
//
// Compared to other decimal libraries, this package:
//
//	Keeps precision as a count of fraction digits, not significant digits.
//	Does not have a distinction between positive and negative Infinity.
//	Never panics on NaN: operations on NaN or Infinity are reported to the
//	diag package and yield zero (NaN for Quo).
package decimal

import (
	"github.com/itsmanjeet/bignumber/decimal/internal/arith"
)

// Decimal is an arbitrary-precision decimal number.
type Decimal struct {
	neg  bool
	intg string // integer digits; "" reads as "0"
	frac string // fraction digits without trailing zeros

	// prec is the rounding precision, see precision.
	prec int32
	form form
}

var one = Decimal{intg: "1"}

// NaN returns the NaN sentinel, also produced by division by zero.
func NaN() Decimal { return Decimal{form: nan} }

// Inf returns the Infinity sentinel.
func Inf() Decimal { return Decimal{form: inf} }

func (d Decimal) num() arith.Number {
	return arith.Number{Neg: d.neg, Int: d.intg, Frac: d.frac}
}

// wrap rounds n to d's precision and returns it as a Decimal carrying
// that precision.
func (d Decimal) wrap(n arith.Number) Decimal {
	n = arith.Round(n, d.Precision())
	return Decimal{neg: n.Neg, intg: n.Int, frac: n.Frac, prec: d.prec}
}

func (d Decimal) zero() Decimal { return Decimal{prec: d.prec} }

func (d Decimal) nan() Decimal { return Decimal{prec: d.prec, form: nan} }

// check reports ErrInvalidOperation for op if d or any of xs is a
// sentinel.
func (d Decimal) check(op string, xs ...Decimal) bool {
	ok := d.form == finite
	for _, x := range xs {
		ok = ok && x.form == finite
	}
	if !ok {
		report(op, ErrInvalidOperation)
	}
	return ok
}

// isOne reports whether |d| == 1.
func (d Decimal) isOne() bool {
	return d.form == finite && d.intg == "1" && d.frac == ""
}

// Precision returns the number of fraction digits d keeps.
func (d Decimal) Precision() int {
	return precision(d.prec)
}

// SetPrecision sets the number of fraction digits d keeps and returns d.
// The value of d is not changed; the new precision applies from the next
// operation that has d as its receiver.
func (d *Decimal) SetPrecision(n int) *Decimal {
	d.prec = storePrecision(n)
	return d
}

// WithPrecision returns a copy of d with precision n.
func (d Decimal) WithPrecision(n int) Decimal {
	d.SetPrecision(n)
	return d
}

// IsNaN reports whether d is the NaN sentinel.
func (d Decimal) IsNaN() bool { return d.form == nan }

// IsInf reports whether d is the Infinity sentinel.
func (d Decimal) IsInf() bool { return d.form == inf }

// IsZero reports whether d is 0.
func (d Decimal) IsZero() bool {
	return d.form == finite && d.num().IsZero()
}

// IsInt reports whether d has no fraction digits.
// NaN and Infinity are not integers.
func (d Decimal) IsInt() bool {
	return d.form == finite && d.frac == ""
}

// IsEven reports whether d is an even integer.
func (d Decimal) IsEven() bool {
	return d.IsInt() && arith.IsEven(d.intg)
}

// IsOdd reports whether d is an odd integer.
func (d Decimal) IsOdd() bool {
	return d.IsInt() && !arith.IsEven(d.intg)
}

// Sign returns:
//
//	-1 if d <  0
//	 0 if d is 0
//	+1 if d >  0
//
// Infinity has sign +1, NaN 0.
func (d Decimal) Sign() int {
	switch {
	case d.form == inf:
		return +1
	case d.form == nan || d.IsZero():
		return 0
	case d.neg:
		return -1
	}
	return +1
}

// IntPart returns the integer digits of d, without sign.
func (d Decimal) IntPart() string {
	return arith.TrimInt(d.intg)
}

// FracPart returns the fraction digits of d; "" for integers.
func (d Decimal) FracPart() string {
	return d.frac
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	if d.form == finite && !d.IsZero() {
		d.neg = !d.neg
	}
	return d
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	d.neg = false
	return d
}

// Cmp compares d and e and returns:
//
//	-1 if d <  e
//	 0 if d == e
//	+1 if d >  e
//
// Infinity is larger than every number. Comparing NaN is an invalid
// operation and returns 0.
func (d Decimal) Cmp(e Decimal) int {
	switch {
	case d.form == nan || e.form == nan:
		report("cmp", ErrInvalidOperation)
		return 0
	case d.form == inf && e.form == inf:
		return 0
	case d.form == inf:
		return +1
	case e.form == inf:
		return -1
	}
	return arith.Cmp(d.num(), e.num())
}

// Equal reports whether d and e have the same sign and digits.
// Precision is not part of a Decimal's identity.
func (d Decimal) Equal(e Decimal) bool {
	if d.form != e.form {
		return false
	}
	if d.form != finite {
		return true
	}
	return arith.Cmp(d.num(), e.num()) == 0
}

// Less reports whether d < e.
func (d Decimal) Less(e Decimal) bool {
	return d.Cmp(e) < 0
}

// Add returns d + e.
func (d Decimal) Add(e Decimal) Decimal {
	if !d.check("add", e) {
		return d.zero()
	}
	return d.wrap(arith.Add(d.num(), e.num(), d.Precision()))
}

// Sub returns d - e.
func (d Decimal) Sub(e Decimal) Decimal {
	if !d.check("sub", e) {
		return d.zero()
	}
	return d.wrap(arith.Sub(d.num(), e.num(), d.Precision()))
}

// Mul returns d * e.
func (d Decimal) Mul(e Decimal) Decimal {
	if !d.check("mul", e) {
		return d.zero()
	}
	switch {
	case d.IsZero() || e.IsZero():
		return d.zero()
	case e.isOne():
		return d.wrap(signed(d.num(), d.neg != e.neg))
	case d.isOne():
		return d.wrap(signed(e.num(), d.neg != e.neg))
	}
	return d.wrap(arith.Mul(d.num(), e.num(), d.Precision()))
}

// Quo returns d / e. Division by zero is reported and returns NaN.
func (d Decimal) Quo(e Decimal) Decimal {
	if !d.check("quo", e) {
		return d.nan()
	}
	x, y := d.num(), e.num()
	switch {
	case e.IsZero():
		report("quo", ErrDivisionByZero)
		return d.nan()
	case d.IsZero():
		return d.zero()
	case e.isOne():
		return d.wrap(signed(x, d.neg != e.neg))
	case arith.CmpMag(x, y) == 0:
		return d.wrap(signed(arith.One, d.neg != e.neg))
	}
	return d.wrap(arith.Quo(x, y, d.Precision()))
}

// Rem returns d modulo e: the remainder of the floored division d / e.
// A non-zero result has the sign of e. Division by zero is reported and
// returns NaN.
func (d Decimal) Rem(e Decimal) Decimal {
	if !d.check("rem", e) {
		return d.zero()
	}
	switch {
	case e.IsZero():
		report("rem", ErrDivisionByZero)
		return d.nan()
	case d.IsZero() || arith.CmpMag(d.num(), e.num()) == 0:
		return d.zero()
	}
	_, r := arith.QuoRem(d.num(), e.num())
	return d.wrap(r)
}

// QuoRem returns the floored quotient q = floor(d/e) and the remainder
// r = d - q*e, so that d == q*e + r and r is zero or has the sign of e.
// Division by zero is reported and returns two NaNs.
func (d Decimal) QuoRem(e Decimal) (q, r Decimal) {
	if !d.check("quorem", e) {
		return d.nan(), d.nan()
	}
	if e.IsZero() {
		report("quorem", ErrDivisionByZero)
		return d.nan(), d.nan()
	}
	qn, rn := arith.QuoRem(d.num(), e.num())
	return d.wrap(qn), d.wrap(rn)
}

// Pow returns d raised to the power e.
//
// Integer exponents use repeated squaring. A fractional exponent is
// split into its integer part and a root of d found by Newton's method,
// which may fall short of full precision for some inputs. Zero to a
// negative power and a negative base with a fractional exponent are
// reported as ErrUndefined and return NaN.
func (d Decimal) Pow(e Decimal) Decimal {
	if !d.check("pow", e) {
		return d.zero()
	}
	switch {
	case d.isOne() && !d.neg:
		return d.wrap(arith.One)
	case e.isOne() && !e.neg:
		return d.wrap(d.num())
	}
	z, ok := arith.Pow(d.num(), e.num(), d.Precision())
	if !ok {
		report("pow", ErrUndefined)
		return d.nan()
	}
	return d.wrap(z)
}

// Sqrt returns the square root of d.
func (d Decimal) Sqrt() Decimal {
	return d.Pow(Decimal{frac: "5"})
}

// Shift returns d * 10**n. A negative n divides.
func (d Decimal) Shift(n int) Decimal {
	if !d.check("shift") {
		return d.zero()
	}
	return d.wrap(arith.Shift(d.num(), n))
}

// Round returns d rounded half to even to n fraction digits. The
// precision of the result is the precision of d.
func (d Decimal) Round(n int) Decimal {
	if d.form != finite {
		return d
	}
	return d.wrap(arith.Round(d.num(), n))
}

// Trunc returns d with fraction digits beyond n dropped.
func (d Decimal) Trunc(n int) Decimal {
	if d.form != finite {
		return d
	}
	return d.wrap(arith.Trunc(d.num(), n))
}

// Inc adds one to d in place.
func (d *Decimal) Inc() {
	if !d.check("inc") {
		return
	}
	if d.IsInt() {
		d.step(true)
		return
	}
	*d = d.Add(one)
}

// Dec subtracts one from d in place. Decrementing zero gives -1.
func (d *Decimal) Dec() {
	if !d.check("dec") {
		return
	}
	if d.IsInt() {
		d.step(false)
		return
	}
	*d = d.Sub(one)
}

// step adds one to the integer d if up, and subtracts one otherwise,
// working on the integer digits alone.
func (d *Decimal) step(up bool) {
	switch {
	case d.IsZero():
		d.neg, d.intg = !up, "1"
	case up != d.neg:
		// away from zero
		d.intg = arith.Inc(d.IntPart())
	default:
		d.intg = arith.Dec(d.IntPart())
		if d.intg == "0" {
			d.neg = false
		}
	}
}

func signed(n arith.Number, neg bool) arith.Number {
	n.Neg = neg
	return n
}
