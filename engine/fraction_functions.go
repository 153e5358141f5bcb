package engine

import (
	"database/sql/driver"
	"fmt"

	"github.com/AZMindroma/dhbw-sem2-scientific-programming-lab/fraction"
)

// Fractions travel through SQL as TEXT in display form ('2/5'); INTEGER
// arguments are read as whole numbers.
func fractionFunctions() []scalarFunction {
	binary := func(name string, op func(a, b fraction.Fraction) (fraction.Fraction, error)) scalarFunction {
		return scalarFunction{name: name, nArgs: 2, impl: func(args []driver.Value) (driver.Value, error) {
			a, b, err := fractionPair(args)
			if err != nil {
				return nil, err
			}
			out, err := op(a, b)
			if err != nil {
				return nil, err
			}
			return out.String(), nil
		}}
	}

	return []scalarFunction{
		{name: "frac_new", nArgs: 2, impl: fracNew},
		binary("frac_add", fraction.Fraction.Add),
		binary("frac_sub", fraction.Fraction.Sub),
		binary("frac_mul", fraction.Fraction.Mul),
		binary("frac_div", fraction.Fraction.Div),
		{name: "frac_cmp", nArgs: 2, impl: func(args []driver.Value) (driver.Value, error) {
			a, b, err := fractionPair(args)
			if err != nil {
				return nil, err
			}
			return int64(a.Cmp(b)), nil
		}},
		{name: "frac_real", nArgs: 1, impl: func(args []driver.Value) (driver.Value, error) {
			f, err := asFraction(args[0])
			if err != nil {
				return nil, err
			}
			return f.Float64(), nil
		}},
	}
}

func fracNew(args []driver.Value) (driver.Value, error) {
	n, ok := args[0].(int64)
	if !ok {
		return nil, fmt.Errorf("numerator %T, want INTEGER: %w", args[0], ErrArgumentType)
	}
	d, ok := args[1].(int64)
	if !ok {
		return nil, fmt.Errorf("denominator %T, want INTEGER: %w", args[1], ErrArgumentType)
	}
	f, err := fraction.New(n, d)
	if err != nil {
		return nil, err
	}
	return f.String(), nil
}

func fractionPair(args []driver.Value) (fraction.Fraction, fraction.Fraction, error) {
	a, err := asFraction(args[0])
	if err != nil {
		return fraction.Fraction{}, fraction.Fraction{}, err
	}
	b, err := asFraction(args[1])
	if err != nil {
		return fraction.Fraction{}, fraction.Fraction{}, err
	}
	return a, b, nil
}

func asFraction(arg driver.Value) (fraction.Fraction, error) {
	switch v := arg.(type) {
	case int64:
		return fraction.FromInt(v), nil
	case string:
		return fraction.Parse(v)
	case []byte:
		return fraction.Parse(string(v))
	default:
		return fraction.Fraction{}, fmt.Errorf("fraction %T, want TEXT or INTEGER: %w", arg, ErrArgumentType)
	}
}
