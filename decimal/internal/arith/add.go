package arith

import "strconv"

// blockSize is the number of digits handed to native arithmetic at a
// time. Two blocks and a carry stay well inside a uint64.
const blockSize = 12

// addBlocks adds the equal-length digit strings a and b from the least
// significant end, one block at a time. The sum has the width of a; the
// carry out of the top block is returned separately.
func addBlocks(a, b string, carry uint64) (string, uint64) {
	out := []byte(zeros(len(a)))
	for hi := len(a); hi > 0; hi -= blockSize {
		lo := hi - blockSize
		if lo < 0 {
			lo = 0
		}
		x, _ := strconv.ParseUint(a[lo:hi], 10, 64)
		y, _ := strconv.ParseUint(b[lo:hi], 10, 64)
		s := strconv.FormatUint(x+y+carry, 10)
		carry = 0
		if len(s) > hi-lo {
			carry = 1
			s = s[1:]
		}
		copy(out[hi-len(s):hi], s)
	}
	return string(out), carry
}

// subBlocks subtracts the equal-length digit string b from a, block by
// block. A block of a that is smaller than its counterpart in b borrows
// by gaining a leading 1. The final borrow is returned.
func subBlocks(a, b string, borrow uint64) (string, uint64) {
	out := []byte(zeros(len(a)))
	for hi := len(a); hi > 0; hi -= blockSize {
		lo := hi - blockSize
		if lo < 0 {
			lo = 0
		}
		x, _ := strconv.ParseUint(a[lo:hi], 10, 64)
		y, _ := strconv.ParseUint(b[lo:hi], 10, 64)
		y += borrow
		borrow = 0
		if x < y {
			x, _ = strconv.ParseUint("1"+a[lo:hi], 10, 64)
			borrow = 1
		}
		s := strconv.FormatUint(x-y, 10)
		copy(out[hi-len(s):hi], s)
	}
	return string(out), borrow
}

// AddInt returns a + b for integer digit strings.
func AddInt(a, b string) string {
	a, b = PadInt(a, b)
	s, carry := addBlocks(a, b, 0)
	if carry > 0 {
		s = "1" + s
	}
	return TrimInt(s)
}

// SubInt returns a - b for integer digit strings with a >= b.
func SubInt(a, b string) string {
	a, b = PadInt(a, b)
	s, _ := subBlocks(a, b, 0)
	return TrimInt(s)
}

// addMag returns |x| + |y|. The fraction parts are added first and
// their carry feeds the integer parts.
func addMag(x, y Number) Number {
	xf, yf := PadFrac(x.Frac, y.Frac)
	frac, carry := addBlocks(xf, yf, 0)
	xi, yi := PadInt(x.Int, y.Int)
	intg, carry := addBlocks(xi, yi, carry)
	if carry > 0 {
		intg = "1" + intg
	}
	return Norm(Number{Int: intg, Frac: frac})
}

// subMag returns |x| - |y|; |x| must not be less than |y|.
func subMag(x, y Number) Number {
	xf, yf := PadFrac(x.Frac, y.Frac)
	frac, borrow := subBlocks(xf, yf, 0)
	xi, yi := PadInt(x.Int, y.Int)
	intg, _ := subBlocks(xi, yi, borrow)
	return Norm(Number{Int: intg, Frac: frac})
}

// Add returns x + y rounded to prec fraction digits.
func Add(x, y Number, prec int) Number {
	var z Number
	if x.Neg == y.Neg {
		z = addMag(x, y)
		z.Neg = x.Neg
		return Round(z, prec)
	}
	switch CmpMag(x, y) {
	case 0:
		z = Zero
	case +1:
		z = subMag(x, y)
		z.Neg = x.Neg
	default:
		z = subMag(y, x)
		z.Neg = y.Neg
	}
	return Round(z, prec)
}

// Sub returns x - y rounded to prec fraction digits.
func Sub(x, y Number, prec int) Number {
	return Add(x, Neg(y), prec)
}
