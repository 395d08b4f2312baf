package arith

import "strconv"

const (
	// Operands longer than karatsubaThreshold digits are multiplied with
	// Karatsuba's method, shorter ones digit by digit.
	karatsubaThreshold = 32

	// Inside Karatsuba, operands shorter than nativeThreshold digits are
	// multiplied as uint64: 7 digits times 7 digits cannot overflow.
	nativeThreshold = 8
)

// Mul returns x * y rounded to prec fraction digits.
func Mul(x, y Number, prec int) Number {
	scale := len(x.Frac) + len(y.Frac)
	p := MulInt(x.Int+x.Frac, y.Int+y.Frac)
	return Round(fromDigits(x.Neg != y.Neg, p, scale), prec)
}

// MulInt returns a * b for integer digit strings.
func MulInt(a, b string) string {
	a, b = TrimInt(a), TrimInt(b)
	if len(a) > karatsubaThreshold || len(b) > karatsubaThreshold {
		return karatsuba(a, b)
	}
	return longMul(a, b)
}

// longMul is schoolbook multiplication: every digit of b times every
// digit of a, accumulated with a running carry.
func longMul(a, b string) string {
	n, m := len(a), len(b)
	acc := make([]byte, n+m) // least significant digit first
	for j := m - 1; j >= 0; j-- {
		bj := int(b[j] - '0')
		if bj == 0 {
			continue
		}
		shift := m - 1 - j
		carry := 0
		for i := n - 1; i >= 0; i-- {
			k := n - 1 - i + shift
			t := int(acc[k]) + bj*int(a[i]-'0') + carry
			acc[k] = byte(t % 10)
			carry = t / 10
		}
		acc[n+shift] = byte(carry)
	}
	out := make([]byte, n+m)
	for k, d := range acc {
		out[n+m-1-k] = d + '0'
	}
	return TrimInt(string(out))
}

// karatsuba multiplies a and b by splitting both at m digits:
//
//	a = hi1*10^m + lo1, b = hi2*10^m + lo2
//	z0 = lo1*lo2, z1 = (lo1+hi1)*(lo2+hi2), z2 = hi1*hi2
//	a*b = z2*10^(2m) + (z1-z2-z0)*10^m + z0
func karatsuba(a, b string) string {
	a, b = TrimInt(a), TrimInt(b)
	if len(a) < nativeThreshold && len(b) < nativeThreshold {
		x, _ := strconv.ParseUint(a, 10, 64)
		y, _ := strconv.ParseUint(b, 10, 64)
		return strconv.FormatUint(x*y, 10)
	}
	// A short operand against a long one would not shrink when split.
	if len(a) < nativeThreshold || len(b) < nativeThreshold {
		return longMul(a, b)
	}

	m := len(a)
	if len(b) < m {
		m = len(b)
	}
	m /= 2

	hi1, lo1 := SplitAt(a, m)
	hi2, lo2 := SplitAt(b, m)

	z0 := karatsuba(lo1, lo2)
	z1 := karatsuba(AddInt(lo1, hi1), AddInt(lo2, hi2))
	z2 := karatsuba(hi1, hi2)

	mid := SubInt(SubInt(z1, z2), z0)
	return AddInt(AddInt(shiftInt(z2, 2*m), shiftInt(mid, m)), z0)
}

func shiftInt(s string, n int) string {
	if s == "0" {
		return s
	}
	return s + zeros(n)
}
