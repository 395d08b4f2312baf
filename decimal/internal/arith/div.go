package arith

// place appends digit to the running remainder r and counts how many
// times den can be taken from it. The count is the next quotient digit.
func place(r, digit, den string) (byte, string) {
	r = TrimInt(r + digit)
	var q byte
	for CmpInt(r, den) >= 0 {
		r = SubInt(r, den)
		q++
	}
	return '0' + q, r
}

// QuoRemInt divides the integer digit string num by den, which must not
// be zero, and returns the quotient and remainder.
//
// Quotient digits are found one at a time: the window of numerator
// digits grows by one digit, the divisor is subtracted from it as often
// as it fits, and a zero digit is emitted whenever it does not fit at
// all.
func QuoRemInt(num, den string) (q, r string) {
	num, den = TrimInt(num), TrimInt(den)
	if CmpInt(num, den) < 0 {
		return "0", num
	}
	qb := make([]byte, 0, len(num))
	r = "0"
	for i := 0; i < len(num); i++ {
		var d byte
		d, r = place(r, num[i:i+1], den)
		qb = append(qb, d)
	}
	return TrimInt(string(qb)), r
}

// Quo returns x / y rounded to prec fraction digits. y must not be zero.
//
// Both operands are scaled to integers with the same number of implied
// fraction digits, divided as integers, and the division then continues
// into the fraction by pulling zeros into the remainder. One digit past
// prec is produced, plus a sticky 1 when the remainder is still non-zero,
// so that the final rounding sees an exact tie only when there is one.
func Quo(x, y Number, prec int) Number {
	if prec < 0 {
		prec = 0
	}
	n, d := x.Int+x.Frac, y.Int+y.Frac
	switch fx, fy := len(x.Frac), len(y.Frac); {
	case fx > fy:
		d += zeros(fx - fy)
	case fy > fx:
		n += zeros(fy - fx)
	}
	d = TrimInt(d)

	q, r := QuoRemInt(n, d)
	frac := make([]byte, 0, prec+2)
	for r != "0" && len(frac) <= prec {
		var digit byte
		digit, r = place(r, "0", d)
		frac = append(frac, digit)
	}
	if r != "0" {
		frac = append(frac, '1')
	}
	return Round(Number{Neg: x.Neg != y.Neg, Int: q, Frac: string(frac)}, prec)
}

// QuoRem returns the floored quotient q = floor(x/y) and the remainder
// r = x - q*y. r is zero or has the sign of y. y must not be zero.
func QuoRem(x, y Number) (q, r Number) {
	x, y = Norm(x), Norm(y)
	scale := len(x.Frac)
	if len(y.Frac) > scale {
		scale = len(y.Frac)
	}
	n := x.Int + x.Frac + zeros(scale-len(x.Frac))
	d := y.Int + y.Frac + zeros(scale-len(y.Frac))

	qi, ri := QuoRemInt(n, d)
	if x.Neg != y.Neg && ri != "0" {
		ri = SubInt(TrimInt(d), ri)
		qi = Inc(qi)
	}
	q = Norm(Number{Neg: x.Neg != y.Neg, Int: qi})
	r = fromDigits(y.Neg, ri, scale)
	return q, r
}

// gcd returns the greatest common divisor of two integer digit strings.
func gcd(a, b string) string {
	a, b = TrimInt(a), TrimInt(b)
	for b != "0" {
		_, r := QuoRemInt(a, b)
		a, b = b, r
	}
	return a
}
