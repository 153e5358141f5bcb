package fraction

import (
	"math"
	"math/bits"
)

// GCD returns the greatest common divisor of |a| and |b| using Euclid's
// algorithm. GCD(0, x) and GCD(x, 0) are |x|. The one result that does not
// fit in an int64, 2^63 for GCD(math.MinInt64, 0) and
// GCD(math.MinInt64, math.MinInt64), is returned as math.MinInt64.
func GCD(a, b int64) int64 {
	return int64(ugcd(uabs(a), uabs(b)))
}

func ugcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// uabs returns |v|; |math.MinInt64| is representable as a uint64.
func uabs(v int64) uint64 {
	if v < 0 {
		return 0 - uint64(v)
	}
	return uint64(v)
}

// mul64 returns a*b and whether it fit in an int64.
func mul64(a, b int64) (int64, bool) {
	hi, lo := bits.Mul64(uabs(a), uabs(b))
	if hi != 0 {
		return 0, false
	}
	if (a < 0) != (b < 0) {
		if lo > 1<<63 {
			return 0, false
		}
		return int64(0 - lo), true
	}
	if lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

// add64 returns a+b and whether it fit in an int64.
func add64(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}

// sub64 returns a-b and whether it fit in an int64.
func sub64(a, b int64) (int64, bool) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return 0, false
	}
	return c, true
}
