package vector

import (
	"fmt"
	"strconv"
	"strings"
)

// Vector is an immutable n-tuple of real numbers. The zero value is the
// empty vector.
type Vector struct {
	values []float64
}

// New creates a vector holding a copy of components.
func New(components ...float64) Vector {
	if len(components) == 0 {
		return Vector{}
	}
	return Vector{values: append([]float64(nil), components...)}
}

// Zeros returns the zero vector of dimension n.
func Zeros(n int) Vector {
	if n <= 0 {
		return Vector{}
	}
	return Vector{values: make([]float64, n)}
}

// Len returns the dimension of v.
func (v Vector) Len() int { return len(v.values) }

// At returns the i-th component. It panics when i is out of range.
func (v Vector) At(i int) float64 { return v.values[i] }

// Components returns a copy of the components of v.
func (v Vector) Components() []float64 {
	return append([]float64(nil), v.values...)
}

// String returns the display form "<c0, c1, ..., cn-1>".
func (v Vector) String() string {
	parts := make([]string, len(v.values))
	for i, c := range v.values {
		if c == 0 {
			c = 0 // print -0 as 0
		}
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// GoString returns the debug form "Vector([c0 c1 ...])".
func (v Vector) GoString() string {
	return fmt.Sprintf("Vector(%v)", v.values)
}

// Equal reports whether v and w have the same dimension and components.
// Vectors of different dimension are unequal; this is not an error.
func (v Vector) Equal(w Vector) bool {
	if len(v.values) != len(w.values) {
		return false
	}
	for i := range v.values {
		if v.values[i] != w.values[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether every component of v is 0.
func (v Vector) IsZero() bool {
	for _, c := range v.values {
		if c != 0 {
			return false
		}
	}
	return true
}

// NonZero reports whether at least one component of v is non-zero.
func (v Vector) NonZero() bool { return !v.IsZero() }

// Neg returns -v.
func (v Vector) Neg() Vector {
	return v.Scale(-1)
}

// Scale returns s*v. Scaling is commutative, so this also serves v*s.
func (v Vector) Scale(s float64) Vector {
	out := Zeros(len(v.values))
	for i, c := range v.values {
		out.values[i] = c * s
	}
	return out
}

// Add returns v + w.
func (v Vector) Add(w Vector) (Vector, error) {
	if err := checkDims("add", v, w); err != nil {
		return Vector{}, err
	}
	out := Zeros(len(v.values))
	for i := range v.values {
		out.values[i] = v.values[i] + w.values[i]
	}
	return out, nil
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) (Vector, error) {
	if err := checkDims("subtract", v, w); err != nil {
		return Vector{}, err
	}
	out := Zeros(len(v.values))
	for i := range v.values {
		out.values[i] = v.values[i] - w.values[i]
	}
	return out, nil
}

// Dot returns the scalar product of v and w.
func (v Vector) Dot(w Vector) (float64, error) {
	if err := checkDims("dot product", v, w); err != nil {
		return 0, err
	}
	return dot(v.values, w.values), nil
}

// Float32s returns the components narrowed to float32, for float32 kernels
// and compact storage.
func (v Vector) Float32s() []float32 {
	out := make([]float32, len(v.values))
	for i, c := range v.values {
		out[i] = float32(c)
	}
	return out
}

// FromFloat32s widens a float32 slice into a Vector.
func FromFloat32s(components []float32) Vector {
	out := Zeros(len(components))
	for i, c := range components {
		out.values[i] = float64(c)
	}
	return out
}

func checkDims(op string, v, w Vector) error {
	if len(v.values) != len(w.values) {
		return fmt.Errorf("vector: %s: %d vs %d: %w", op, len(v.values), len(w.values), ErrDimensionMismatch)
	}
	return nil
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
