package fraction

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Fraction is an immutable rational number num/den in canonical form:
// den > 0 and gcd(|num|, den) == 1, zero being 0/1.
type Fraction struct {
	num int64
	den int64
}

// Common values.
var (
	Zero = Fraction{num: 0, den: 1}
	One  = Fraction{num: 1, den: 1}
)

// New returns the canonical fraction numerator/denominator. It fails with
// ErrDivisionByZero when denominator is 0, and with ErrOverflow when moving
// the sign to the numerator would negate math.MinInt64.
func New(numerator, denominator int64) (Fraction, error) {
	if denominator == 0 {
		return Fraction{}, fmt.Errorf("fraction: %d/0: %w", numerator, ErrDivisionByZero)
	}
	return normalize(numerator, denominator)
}

// MustNew is like New but panics on error.
func MustNew(numerator, denominator int64) Fraction {
	f, err := New(numerator, denominator)
	if err != nil {
		panic(err)
	}
	return f
}

// FromInt returns n/1.
func FromInt(n int64) Fraction {
	return Fraction{num: n, den: 1}
}

// normalize reduces n/d to lowest terms and moves the sign to n.
// d must not be zero.
func normalize(n, d int64) (Fraction, error) {
	// g is 2^63 only when n and d are each 0 or math.MinInt64; int64(g) is
	// then math.MinInt64 and the divisions still yield 0 or 1.
	if g := ugcd(uabs(n), uabs(d)); g > 1 {
		n /= int64(g)
		d /= int64(g)
	}
	if d < 0 {
		if n == math.MinInt64 || d == math.MinInt64 {
			return Fraction{}, fmt.Errorf("fraction: %d/%d: %w", n, d, ErrOverflow)
		}
		n, d = -n, -d
	}
	if n == 0 {
		d = 1
	}
	return Fraction{num: n, den: d}, nil
}

// Numerator returns the normalized numerator; it carries the sign.
func (f Fraction) Numerator() int64 { return f.num }

// Denominator returns the normalized, always positive, denominator.
func (f Fraction) Denominator() int64 {
	if f.den == 0 {
		return 1
	}
	return f.den
}

// String returns the display form "N/D".
func (f Fraction) String() string {
	return strconv.FormatInt(f.num, 10) + "/" + strconv.FormatInt(f.Denominator(), 10)
}

// GoString returns the debug form "Fraction(N,D)".
func (f Fraction) GoString() string {
	return fmt.Sprintf("Fraction(%d,%d)", f.num, f.Denominator())
}

// IsZero reports whether f equals 0.
func (f Fraction) IsZero() bool { return f.num == 0 }

// Float64 returns the nearest float64 approximation of f.
func (f Fraction) Float64() float64 {
	return float64(f.num) / float64(f.Denominator())
}

// Reciprocal returns den/num. The reciprocal of zero is undefined and
// reported as ErrDivisionByZero.
func (f Fraction) Reciprocal() (Fraction, error) {
	if f.num == 0 {
		return Fraction{}, fmt.Errorf("fraction: reciprocal of %v: %w", f, ErrDivisionByZero)
	}
	return normalize(f.Denominator(), f.num)
}

// Neg returns -f. math.MinInt64/1 has no negation in range.
func (f Fraction) Neg() (Fraction, error) {
	if f.num == math.MinInt64 {
		return Fraction{}, fmt.Errorf("fraction: -(%v): %w", f, ErrOverflow)
	}
	return Fraction{num: -f.num, den: f.Denominator()}, nil
}

// Add returns f + g.
func (f Fraction) Add(g Fraction) (Fraction, error) {
	fn, gn, den, ok := commonDenominator(f, g)
	if ok {
		fn, ok = add64(fn, gn)
	}
	if !ok {
		return Fraction{}, fmt.Errorf("fraction: %v + %v: %w", f, g, ErrOverflow)
	}
	return normalize(fn, den)
}

// Sub returns f - g.
func (f Fraction) Sub(g Fraction) (Fraction, error) {
	fn, gn, den, ok := commonDenominator(f, g)
	if ok {
		fn, ok = sub64(fn, gn)
	}
	if !ok {
		return Fraction{}, fmt.Errorf("fraction: %v - %v: %w", f, g, ErrOverflow)
	}
	return normalize(fn, den)
}

// Mul returns f * g. Common factors across the operands are cancelled
// before multiplying, so only results that are themselves out of range
// overflow.
func (f Fraction) Mul(g Fraction) (Fraction, error) {
	fd, gd := f.Denominator(), g.Denominator()
	a := int64(ugcd(uabs(f.num), uint64(gd)))
	b := int64(ugcd(uabs(g.num), uint64(fd)))
	n, okNum := mul64(f.num/a, g.num/b)
	d, okDen := mul64(fd/b, gd/a)
	if !okNum || !okDen {
		return Fraction{}, fmt.Errorf("fraction: %v * %v: %w", f, g, ErrOverflow)
	}
	return normalize(n, d)
}

// Div returns f / g, computed as f multiplied by the reciprocal of g. It
// fails with ErrDivisionByZero when g is zero.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	r, err := g.Reciprocal()
	if errors.Is(err, ErrDivisionByZero) {
		return Fraction{}, fmt.Errorf("fraction: %v / %v: %w", f, g, ErrDivisionByZero)
	}
	if err != nil {
		return Fraction{}, err
	}
	return f.Mul(r)
}

// commonDenominator brings f and g to a shared denominator. Equal
// denominators are returned unchanged; otherwise each numerator is scaled by
// the other denominator divided by gcd(fd, gd), giving the least common
// denominator. ok is false when a product leaves the int64 range.
func commonDenominator(f, g Fraction) (fn, gn, den int64, ok bool) {
	fd, gd := f.Denominator(), g.Denominator()
	if fd == gd {
		return f.num, g.num, fd, true
	}
	k := int64(ugcd(uint64(fd), uint64(gd)))
	fScale, gScale := gd/k, fd/k
	if den, ok = mul64(fd, fScale); !ok {
		return 0, 0, 0, false
	}
	if fn, ok = mul64(f.num, fScale); !ok {
		return 0, 0, 0, false
	}
	if gn, ok = mul64(g.num, gScale); !ok {
		return 0, 0, 0, false
	}
	return fn, gn, den, true
}
