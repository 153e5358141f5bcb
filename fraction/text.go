package fraction

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a fraction in display form ("-13/2") or a bare integer ("7").
// Whitespace around the numbers is ignored.
func Parse(s string) (Fraction, error) {
	numText, denText, hasDen := strings.Cut(s, "/")
	n, err := strconv.ParseInt(strings.TrimSpace(numText), 10, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("fraction: parse %q: %w", s, ErrSyntax)
	}
	if !hasDen {
		return FromInt(n), nil
	}
	d, err := strconv.ParseInt(strings.TrimSpace(denText), 10, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("fraction: parse %q: %w", s, ErrSyntax)
	}
	return New(n, d)
}

// MarshalText implements encoding.TextMarshaler using the display form.
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fraction) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
