package engine

import (
	"database/sql/driver"
	"fmt"

	"github.com/AZMindroma/dhbw-sem2-scientific-programming-lab/vector"
)

// Vectors travel through SQL as BLOBs produced by vector.Encode.
func vectorFunctions() []scalarFunction {
	binaryVec := func(name string, op func(a, b vector.Vector) (vector.Vector, error)) scalarFunction {
		return scalarFunction{name: name, nArgs: 2, impl: func(args []driver.Value) (driver.Value, error) {
			a, b, err := vectorPair(args)
			if err != nil {
				return nil, err
			}
			out, err := op(a, b)
			if err != nil {
				return nil, err
			}
			return encodeResult(out), nil
		}}
	}
	binaryReal := func(name string, op func(a, b vector.Vector) (float64, error)) scalarFunction {
		return scalarFunction{name: name, nArgs: 2, impl: func(args []driver.Value) (driver.Value, error) {
			a, b, err := vectorPair(args)
			if err != nil {
				return nil, err
			}
			return op(a, b)
		}}
	}

	return []scalarFunction{
		binaryVec("vec_add", vector.Vector.Add),
		binaryVec("vec_sub", vector.Vector.Sub),
		binaryReal("vec_dot", vector.Vector.Dot),
		binaryReal("vec_l2", vector.Vector.EuclidDist),
		binaryReal("vec_l1", vector.Vector.ManhattanDist),
		binaryReal("vec_cosine", vector.Vector.CosineSimilarity),
		{name: "vec_scale", nArgs: 2, impl: vecScale},
		{name: "vec_mul", nArgs: 2, impl: vecMul},
		{name: "vec_norm", nArgs: 1, impl: func(args []driver.Value) (driver.Value, error) {
			v, err := asVector(args[0])
			if err != nil {
				return nil, err
			}
			return v.Norm(), nil
		}},
		{name: "vec_text", nArgs: 1, impl: func(args []driver.Value) (driver.Value, error) {
			v, err := asVector(args[0])
			if err != nil {
				return nil, err
			}
			return v.String(), nil
		}},
	}
}

func vecScale(args []driver.Value) (driver.Value, error) {
	v, err := asVector(args[0])
	if err != nil {
		return nil, err
	}
	s, err := asScalar(args[1])
	if err != nil {
		return nil, err
	}
	return encodeResult(v.Scale(s)), nil
}

// vecMul keeps the dynamically typed multiply: a BLOB right operand yields
// the dot product, a numeric one the scaled vector.
func vecMul(args []driver.Value) (driver.Value, error) {
	v, err := asVector(args[0])
	if err != nil {
		return nil, err
	}
	if _, ok := args[1].([]byte); ok {
		w, err := asVector(args[1])
		if err != nil {
			return nil, err
		}
		return v.Dot(w)
	}
	return vecScale(args)
}

func vectorPair(args []driver.Value) (vector.Vector, vector.Vector, error) {
	a, err := asVector(args[0])
	if err != nil {
		return vector.Vector{}, vector.Vector{}, err
	}
	b, err := asVector(args[1])
	if err != nil {
		return vector.Vector{}, vector.Vector{}, err
	}
	return a, b, nil
}

func asVector(arg driver.Value) (vector.Vector, error) {
	b, ok := arg.([]byte)
	if !ok {
		return vector.Vector{}, fmt.Errorf("unsupported argument type %T for vector; want BLOB: %w", arg, vector.ErrInvalidOperand)
	}
	return vector.Decode(b)
}

func asScalar(arg driver.Value) (float64, error) {
	switch v := arg.(type) {
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("unsupported argument type %T for scalar; want INTEGER or REAL: %w", arg, vector.ErrInvalidOperand)
	}
}

// encodeResult never returns nil for a vector so that an empty vector is an
// empty BLOB rather than SQL NULL.
func encodeResult(v vector.Vector) []byte {
	if b := vector.Encode(v); b != nil {
		return b
	}
	return []byte{}
}
