// Package arith implements decimal arithmetic on strings of digit
// characters. Nothing here is bounded by a machine word: integer and
// fraction parts are plain digit strings, most significant digit first.
//
// The functions are pure. They never log and never keep state between
// calls, so callers may use them from any number of goroutines.
package arith

import "strings"

// Number is a signed decimal value split at the decimal point.
//
// Int holds the integer digits and Frac the fraction digits. A normalized
// Number (see Norm) has no leading zeros in Int except a single "0", no
// trailing zeros in Frac, and is never a negative zero.
type Number struct {
	Neg  bool
	Int  string
	Frac string
}

var (
	Zero = Number{Int: "0"}
	One  = Number{Int: "1"}
)

// IsZero reports whether x is zero, normalized or not.
func (x Number) IsZero() bool {
	return TrimInt(x.Int) == "0" && TrimFrac(x.Frac) == ""
}

func (x Number) String() string {
	var b strings.Builder
	if x.Neg {
		b.WriteByte('-')
	}
	b.WriteString(TrimInt(x.Int))
	if x.Frac != "" {
		b.WriteByte('.')
		b.WriteString(x.Frac)
	}
	return b.String()
}

// Norm trims non-significant zeros from x and clears the sign of zero.
func Norm(x Number) Number {
	x.Int = TrimInt(x.Int)
	x.Frac = TrimFrac(x.Frac)
	if x.Int == "0" && x.Frac == "" {
		x.Neg = false
	}
	return x
}

// Neg returns -x.
func Neg(x Number) Number {
	x.Neg = !x.Neg
	return x
}

// Abs returns |x|.
func Abs(x Number) Number {
	x.Neg = false
	return x
}

// TrimInt removes leading zeros, keeping at least one digit.
func TrimInt(s string) string {
	if s == "" {
		return "0"
	}
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

// TrimFrac removes trailing zeros.
func TrimFrac(s string) string {
	return strings.TrimRight(s, "0")
}

func zeros(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("0", n)
}

// PadInt left-pads the shorter of a and b with zeros.
func PadInt(a, b string) (string, string) {
	switch {
	case len(a) < len(b):
		a = zeros(len(b)-len(a)) + a
	case len(b) < len(a):
		b = zeros(len(a)-len(b)) + b
	}
	return a, b
}

// PadFrac right-pads the shorter of a and b with zeros.
func PadFrac(a, b string) (string, string) {
	switch {
	case len(a) < len(b):
		a += zeros(len(b) - len(a))
	case len(b) < len(a):
		b += zeros(len(a) - len(b))
	}
	return a, b
}

// CmpInt compares the integer digit strings a and b and returns -1, 0
// or +1.
func CmpInt(a, b string) int {
	a, b = TrimInt(a), TrimInt(b)
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return +1
	}
	return strings.Compare(a, b)
}

// CmpFrac compares the fraction digit strings a and b.
func CmpFrac(a, b string) int {
	a, b = PadFrac(a, b)
	return strings.Compare(a, b)
}

// CmpMag compares |x| and |y|.
func CmpMag(x, y Number) int {
	if c := CmpInt(x.Int, y.Int); c != 0 {
		return c
	}
	return CmpFrac(x.Frac, y.Frac)
}

// Cmp compares x and y, sign included.
func Cmp(x, y Number) int {
	xn := x.Neg && !x.IsZero()
	yn := y.Neg && !y.IsZero()
	switch {
	case xn && !yn:
		return -1
	case !xn && yn:
		return +1
	}
	c := CmpMag(x, y)
	if xn {
		return -c
	}
	return c
}

// bump adds one to the fixed-width digit string s. The result keeps the
// width of s; the second result reports a carry out of the top digit.
func bump(s string) (string, bool) {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b), false
		}
		b[i] = '0'
	}
	return string(b), true
}

// Inc returns s + 1 for an integer digit string s.
func Inc(s string) string {
	r, carry := bump(TrimInt(s))
	if carry {
		return "1" + r
	}
	return r
}

// Dec returns s - 1 for a positive integer digit string s. Dec("0")
// is "0".
func Dec(s string) string {
	b := []byte(TrimInt(s))
	if len(b) == 1 && b[0] == '0' {
		return "0"
	}
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] > '0' {
			b[i]--
			break
		}
		b[i] = '9'
	}
	return TrimInt(string(b))
}

// IsEven reports whether the last digit of s is even.
func IsEven(s string) bool {
	if s == "" {
		return true
	}
	return (s[len(s)-1]-'0')%2 == 0
}

// SplitAt splits s so that lo holds its last n digits. Both parts are
// trimmed of leading zeros.
//
//	SplitAt("12345", 3) // "12", "345"
func SplitAt(s string, n int) (hi, lo string) {
	switch {
	case n <= 0:
		return TrimInt(s), "0"
	case n >= len(s):
		return "0", TrimInt(s)
	}
	return TrimInt(s[:len(s)-n]), TrimInt(s[len(s)-n:])
}

// SplitPoint splits s at its decimal point.
func SplitPoint(s string) (intg, frac string) {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// Shift returns x * 10**n, moving digits across the decimal point.
// A negative n divides.
func Shift(x Number, n int) Number {
	x.Int = TrimInt(x.Int)
	switch {
	case n > 0 && n <= len(x.Frac):
		x.Int += x.Frac[:n]
		x.Frac = x.Frac[n:]
	case n > 0:
		x.Int += x.Frac + zeros(n-len(x.Frac))
		x.Frac = ""
	case n < 0 && -n <= len(x.Int):
		k := len(x.Int) + n
		x.Frac = x.Int[k:] + x.Frac
		x.Int = x.Int[:k]
	case n < 0:
		x.Frac = zeros(-n-len(x.Int)) + x.Int + x.Frac
		x.Int = ""
	}
	return Norm(x)
}

// fromDigits builds a Number from the digit string d holding scale
// fraction digits.
func fromDigits(neg bool, d string, scale int) Number {
	if scale <= 0 {
		return Norm(Number{Neg: neg, Int: d})
	}
	if len(d) <= scale {
		d = zeros(scale-len(d)+1) + d
	}
	return Norm(Number{Neg: neg, Int: d[:len(d)-scale], Frac: d[len(d)-scale:]})
}
