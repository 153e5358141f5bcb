package vector

import "errors"

var (
	// ErrDimensionMismatch is returned by binary operations on vectors of
	// different length.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrInvalidOperand is returned when an operand does not have the shape an
	// operation expects, e.g. a scalar where a vector is required.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrUndefinedSimilarity is returned by cosine similarity when either
	// operand has zero magnitude.
	ErrUndefinedSimilarity = errors.New("undefined similarity")
)
