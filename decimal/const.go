package decimal

import "math"

// Precision limits. Precision is the number of fraction digits a
// Decimal keeps after rounding.
const (
	MinPrecision = 0
	MaxPrecision = math.MaxInt32
)

// DefaultPrecision is the precision of decimals created by parsing,
// by conversion, or as the zero value.
const DefaultPrecision = 6

// precision is a slight hack to work around Go's zero values. Were the
// zero value of the prec field used as-is, every new Decimal would round
// to integers. So a stored zero means DefaultPrecision, and precision 0
// is stored as a negative number.
func precision(p int32) int {
	if p == 0 {
		return DefaultPrecision
	}
	if p < 0 {
		return 0
	}
	return int(p)
}

// storePrecision is the inverse of precision.
func storePrecision(n int) int32 {
	switch {
	case n <= MinPrecision:
		return -1
	case n > MaxPrecision:
		return MaxPrecision
	}
	return int32(n)
}

// form tells whether a Decimal is a number or one of the sentinels.
type form byte

// Do not change these constants: the zero value must be finite.
const (
	finite form = iota
	nan
	inf
)

// Textual forms of the sentinels.
const (
	nanText = "NAN"
	infText = "INFINITY"
)
