// Package fraction implements exact rational numbers. A Fraction is always
// kept in lowest terms with a positive denominator, so two fractions with the
// same value have identical numerator/denominator pairs.
package fraction
