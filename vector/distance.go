package vector

import (
	"fmt"
	"math"
)

// Norm returns the Euclidean (L2) magnitude of v. Components are scaled by
// the largest magnitude before squaring, so Norm neither overflows nor
// underflows for finite input. A NaN component gives NaN, an infinite one +Inf.
func (v Vector) Norm() float64 {
	return norm(v.values)
}

// EuclidDist returns the Euclidean (L2) distance between v and w.
func (v Vector) EuclidDist(w Vector) (float64, error) {
	if err := checkDims("euclidean distance", v, w); err != nil {
		return 0, err
	}
	diff := make([]float64, len(v.values))
	for i := range v.values {
		diff[i] = v.values[i] - w.values[i]
	}
	return norm(diff), nil
}

// ManhattanDist returns the L1 distance between v and w.
func (v Vector) ManhattanDist(w Vector) (float64, error) {
	if err := checkDims("manhattan distance", v, w); err != nil {
		return 0, err
	}
	var sum float64
	for i := range v.values {
		sum += math.Abs(v.values[i] - w.values[i])
	}
	return sum, nil
}

// CosineSimilarity computes the cosine similarity between v and w. It
// returns an error if the vectors have different lengths, if either vector
// is the zero vector, or if a component is NaN or infinite.
func (v Vector) CosineSimilarity(w Vector) (float64, error) {
	if err := checkDims("cosine similarity", v, w); err != nil {
		return 0, err
	}
	if v.IsZero() || w.IsZero() {
		return 0, fmt.Errorf("vector: cosine similarity with zero-magnitude vector: %w", ErrUndefinedSimilarity)
	}
	// Each operand is divided by its largest magnitude; the quotient is
	// unchanged and the sums stay in [1, n].
	sv, sw := maxAbs(v.values), maxAbs(w.values)
	var d, nv2, nw2 float64
	for i := range v.values {
		x, y := v.values[i]/sv, w.values[i]/sw
		d += x * y
		nv2 += x * x
		nw2 += y * y
	}
	sim := d / (math.Sqrt(nv2) * math.Sqrt(nw2))
	if math.IsNaN(sim) {
		return 0, fmt.Errorf("vector: cosine similarity with non-finite component: %w", ErrUndefinedSimilarity)
	}
	// rounding can push parallel vectors just outside [-1, 1]
	return math.Max(-1, math.Min(1, sim)), nil
}

// norm is the scaled L2 magnitude, computed like math.Hypot.
func norm(x []float64) float64 {
	scale := maxAbs(x)
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 1) {
		return scale
	}
	var sum float64
	for _, c := range x {
		r := c / scale
		sum += r * r
	}
	return scale * math.Sqrt(sum)
}

// maxAbs returns the largest |c| in x, or NaN if any component is NaN.
func maxAbs(x []float64) float64 {
	var m float64
	for _, c := range x {
		if math.IsNaN(c) {
			return c
		}
		if a := math.Abs(c); a > m {
			m = a
		}
	}
	return m
}
