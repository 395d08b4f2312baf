package decimal

import (
	"strconv"

	"github.com/itsmanjeet/bignumber/diag"
	"golang.org/x/xerrors"
)

// Conditions reported by this package. None of them stops a chain of
// operations: each leaves behind a zero value, the NaN sentinel, or a
// false flag, and is also sent to the diag package.
var (
	// ErrSyntax is wrapped by the errors returned for malformed text.
	ErrSyntax = xerrors.New("invalid decimal syntax")

	// ErrInvalidOperation is reported when an operand is NaN or
	// Infinity. The result is zero, or NaN for Quo.
	ErrInvalidOperation = xerrors.New("invalid operation")

	// ErrDivisionByZero is reported by Quo, Rem and QuoRem with a zero
	// divisor. The result is NaN.
	ErrDivisionByZero = xerrors.New("division by zero")

	// ErrUndefined is reported when a power has no decimal value, such
	// as zero to a negative power. The result is NaN.
	ErrUndefined = xerrors.New("undefined result")

	// ErrConversion is reported when a Decimal does not fit a native
	// numeric type.
	ErrConversion = xerrors.New("conversion failed")
)

// A ParseError records a failed conversion of text to a Decimal.
type ParseError struct {
	Input string // the input text
	Err   error  // the reason; wraps ErrSyntax
}

func (e *ParseError) Error() string {
	return "decimal: parsing " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

func report(op string, err error) {
	diag.Report(err.Error(), "op", op)
}
