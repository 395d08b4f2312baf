package arith

// Round rounds x to prec fraction digits, ties to even.
//
// The first dropped digit decides: 0-4 truncates, 6-9 rounds up. A 5
// followed by more non-zero digits rounds up; a lone 5 rounds toward the
// even neighbour, judged by the last kept digit (the last integer digit
// when prec is 0). A carry through a run of nines moves into the integer
// part.
//
// This is not rounding on the first dropped digit alone: 2.51 at prec 0
// is 3, not 2. Nor does prec 0 truncate; use Trunc for that.
func Round(x Number, prec int) Number {
	if prec < 0 {
		prec = 0
	}
	x = Norm(x)
	if len(x.Frac) <= prec {
		return x
	}
	kept, rest := x.Frac[:prec], x.Frac[prec:]
	prev := x.Int[len(x.Int)-1]
	if prec > 0 {
		prev = kept[prec-1]
	}
	if roundUp(prev, rest) {
		var carry bool
		if kept, carry = bump(kept); carry {
			x.Int = Inc(x.Int)
		}
	}
	x.Frac = kept
	return Norm(x)
}

// roundUp reports whether dropping rest, the non-empty tail of a trimmed
// fraction, rounds the kept digits up.
func roundUp(prev byte, rest string) bool {
	switch d := rest[0]; {
	case d < '5':
		return false
	case d > '5':
		return true
	case len(rest) > 1:
		// rest has no trailing zeros, so something non-zero follows the 5.
		return true
	}
	return (prev-'0')%2 == 1
}

// Trunc drops fraction digits of x beyond prec.
func Trunc(x Number, prec int) Number {
	if prec < 0 {
		prec = 0
	}
	if len(x.Frac) > prec {
		x.Frac = x.Frac[:prec]
	}
	return Norm(x)
}
