package arith

import (
	"math"
	"strconv"
	"strings"
)

const (
	// guardDigits extra digits are carried through the intermediate steps
	// of powers and roots.
	guardDigits = 8

	// rootIterations bounds the Newton iteration in Root.
	rootIterations = 20

	// Fractional exponents p/q with q up to maxRootDegree are computed as
	// the q-th root of x**p; others are taken apart digit by digit.
	maxRootDegree = 64

	// maxMagnitude caps the digit count derived from a float64 estimate.
	maxMagnitude = 1 << 30
)

// PowInt returns x**n for the non-negative integer digit string n. Every
// intermediate product is exact and then rounded to sig significant
// digits, so small bases keep their precision however many leading zeros
// the powers grow.
func PowInt(x Number, n string, sig int) Number {
	switch n = TrimInt(n); n {
	case "0":
		return One
	case "1":
		return RoundSig(x, sig)
	}
	half, _ := QuoRemInt(n, "2")
	h := PowInt(x, half, sig)
	z := RoundSig(mulExact(h, h), sig)
	if !IsEven(n) {
		z = RoundSig(mulExact(z, x), sig)
	}
	return z
}

// RoundSig rounds x half to even to sig significant digits. Integer
// digits are never rounded away.
func RoundSig(x Number, sig int) Number {
	x = Norm(x)
	if x.IsZero() {
		return x
	}
	var prec int
	if x.Int != "0" {
		prec = sig - len(x.Int)
	} else {
		prec = sig + len(x.Frac) - len(strings.TrimLeft(x.Frac, "0"))
	}
	if prec < 0 {
		prec = 0
	}
	return Round(x, prec)
}

func mulExact(x, y Number) Number {
	return Mul(x, y, len(x.Frac)+len(y.Frac))
}

// Pow returns x**y rounded to prec fraction digits. The second result is
// false when the power is undefined: zero to a negative power, or a
// negative base with a fractional exponent.
//
// The working precision follows the size of the result: a power with k
// integer digits is computed to k+prec significant digits plus guards,
// and a negative power is the quotient of one by the positive power
// carried to as many significant digits as the quotient needs.
func Pow(x, y Number, prec int) (Number, bool) {
	x, y = Norm(x), Norm(y)
	switch {
	case x.IsZero():
		if y.Neg {
			return Number{}, false
		}
		if y.IsZero() {
			return One, true
		}
		return Zero, true
	case y.IsZero():
		return One, true
	case x.Neg && y.Frac != "":
		return Number{}, false
	}

	ax, ay := Abs(x), Abs(y)
	e := Log10(ax) * toFloat(ay)
	if y.Neg {
		e = -e
	}
	z := powAbs(ax, ay, prec+guardDigits+intDigits(e))
	if y.Neg {
		z = Quo(One, z, prec)
	}
	z.Neg = x.Neg && !IsEven(y.Int)
	return Round(z, prec), true
}

// powAbs returns x**y for x > 0 and y >= 0 to about sig significant
// digits.
func powAbs(x, y Number, sig int) Number {
	// Each squaring at most doubles the relative error.
	sig += len(y.Int) + 1
	z := PowInt(x, y.Int, sig)
	if y.Frac == "" {
		return z
	}
	// x**0.f has -e leading fraction zeros when e < 0.
	e := Log10(x) * toFloat(Number{Int: "0", Frac: y.Frac})
	fp := sig + 1
	if e < 0 {
		fp += intDigits(-e)
	}
	return RoundSig(mulExact(z, fracPow(x, y.Frac, fp)), sig)
}

// fracPow returns x**0.f for x > 0 rounded to prec fraction digits.
func fracPow(x Number, f string, prec int) Number {
	p, q := TrimInt(f), "1"+zeros(len(f))
	g := gcd(p, q)
	p, _ = QuoRemInt(p, g)
	q, _ = QuoRemInt(q, g)
	if CmpInt(q, strconv.Itoa(maxRootDegree)) <= 0 {
		n, _ := strconv.Atoi(q)
		sig := prec + len(TrimInt(x.Int)) + guardDigits
		return Root(PowInt(x, p, sig), n, prec)
	}

	// x**0.d1d2...dk = (x**0.1)**d1 * (x**0.01)**d2 * ... * (x**10^-k)**dk
	z, r := One, x
	for i := 0; i < len(f); i++ {
		r = Root(r, 10, prec)
		if f[i] != '0' {
			z = Mul(z, PowInt(r, f[i:i+1], prec+guardDigits), prec)
		}
	}
	return z
}

// Root returns the n-th root of x >= 0 rounded to prec fraction digits,
// by Newton's iteration
//
//	x[k+1] = ((n-1)*x[k] + x/x[k]**(n-1)) / n
//
// It stops once two iterates differ by less than one unit in the last
// place of prec, or after rootIterations steps. In the latter case the
// last iterate is returned as is.
func Root(x Number, n int, prec int) Number {
	x = Norm(x)
	if n <= 1 || x.IsZero() {
		return Round(x, prec)
	}
	wp := prec + guardDigits
	nn := Number{Int: strconv.Itoa(n)}
	nm := Number{Int: strconv.Itoa(n - 1)}
	eps := Shift(One, -prec)

	xk := seed(x, n)
	for i := 0; i < rootIterations; i++ {
		p := PowInt(xk, nm.Int, wp+len(xk.Int))
		if p.IsZero() {
			break
		}
		next := Quo(Add(Mul(nm, xk, wp), Quo(x, p, wp), wp), nn, wp)
		delta := Sub(next, xk, wp)
		xk = next
		if CmpMag(delta, eps) < 0 {
			break
		}
	}
	return Round(xk, prec)
}

// Log10 estimates log10 x for x > 0 in float64 from the leading digits of
// x and its decimal exponent, so it works far outside the float64 range.
func Log10(x Number) float64 {
	x = Norm(x)
	// x = 0.lead * 10**e
	e := len(x.Int)
	if x.Int == "0" {
		e = -(len(x.Frac) - len(strings.TrimLeft(x.Frac, "0")))
	}
	lead := TrimInt(x.Int + x.Frac)
	if len(lead) > 15 {
		lead = lead[:15]
	}
	m, _ := strconv.ParseFloat("0."+lead, 64)
	return math.Log10(m) + float64(e)
}

// seed estimates the n-th root of x > 0.
func seed(x Number, n int) Number {
	l := Log10(x) / float64(n)
	k := math.Floor(l)
	var s Number
	s.Int, s.Frac = SplitPoint(strconv.FormatFloat(math.Pow(10, l-k), 'f', 15, 64))
	return Shift(s, int(k))
}

// intDigits bounds the integer digit count of a number whose log10 is
// about e, with one digit of slack for the estimate.
func intDigits(e float64) int {
	switch {
	case math.IsNaN(e) || e <= 0:
		return 1
	case e >= maxMagnitude:
		return maxMagnitude
	}
	return int(math.Ceil(e)) + 1
}

// toFloat converts x to float64, saturating to ±Inf.
func toFloat(x Number) float64 {
	f, _ := strconv.ParseFloat(x.String(), 64)
	return f
}
