package fraction

import "math/bits"

// Equal reports whether f and g have the same value. Canonical form makes
// this a pairwise comparison.
func (f Fraction) Equal(g Fraction) bool {
	return f.num == g.num && f.Denominator() == g.Denominator()
}

// Cmp returns -1, 0 or +1 depending on whether f is less than, equal to or
// greater than g. The numerators are brought to the common denominator
// fd*gd in 128-bit arithmetic, so Cmp never overflows.
func (f Fraction) Cmp(g Fraction) int {
	fs, gs := sign(f.num), sign(g.num)
	if fs != gs || fs == 0 {
		return compareInts(fs, gs)
	}
	lhi, llo := bits.Mul64(uabs(f.num), uint64(g.Denominator()))
	rhi, rlo := bits.Mul64(uabs(g.num), uint64(f.Denominator()))
	c := compareInts(lhi, rhi)
	if c == 0 {
		c = compareInts(llo, rlo)
	}
	return c * fs
}

// Less reports f < g.
func (f Fraction) Less(g Fraction) bool { return f.Cmp(g) < 0 }

// LessEqual reports f <= g.
func (f Fraction) LessEqual(g Fraction) bool { return f.Cmp(g) <= 0 }

// Greater reports f > g.
func (f Fraction) Greater(g Fraction) bool { return f.Cmp(g) > 0 }

// GreaterEqual reports f >= g.
func (f Fraction) GreaterEqual(g Fraction) bool { return f.Cmp(g) >= 0 }

func sign(v int64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func compareInts[T int | uint64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
