package fraction

import "errors"

var (
	// ErrDivisionByZero is returned for a zero denominator and for the
	// reciprocal of (or division by) a zero fraction.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow is returned when a result, or an intermediate product
	// needed to compute it, does not fit in an int64.
	ErrOverflow = errors.New("int64 overflow")

	// ErrSyntax is returned when a textual fraction cannot be parsed.
	ErrSyntax = errors.New("invalid syntax")
)
