package vector

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Encode encodes v into a BLOB representation suitable for storage in SQLite.
// The encoding is a little-endian sequence of IEEE 754 float64 values without
// a length prefix; the dimension is derived from the BLOB size on decode. The
// empty vector encodes to nil.
func Encode(v Vector) []byte {
	if len(v.values) == 0 {
		return nil
	}
	b := make([]byte, len(v.values)*8)
	for i, c := range v.values {
		binary.LittleEndian.PutUint64(b[i*8:], math.Float64bits(c))
	}
	return b
}

// Decode decodes a BLOB produced by Encode back into a Vector.
func Decode(b []byte) (Vector, error) {
	if len(b) == 0 {
		return Vector{}, nil
	}
	if len(b)%8 != 0 {
		return Vector{}, fmt.Errorf("vector: invalid blob length %d (not multiple of 8): %w", len(b), ErrInvalidOperand)
	}
	out := Zeros(len(b) / 8)
	for i := range out.values {
		out.values[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return out, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Vector) MarshalBinary() ([]byte, error) {
	return Encode(v), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Vector) UnmarshalBinary(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// MarshalYAML emits the components as a flow sequence, e.g. [1, 2, 3].
func (v Vector) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range v.values {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: yamlFloat(c)})
	}
	return node, nil
}

func yamlFloat(c float64) string {
	switch {
	case math.IsNaN(c):
		return ".nan"
	case math.IsInf(c, 1):
		return ".inf"
	case math.IsInf(c, -1):
		return "-.inf"
	case c == 0:
		return "0"
	}
	return strconv.FormatFloat(c, 'g', -1, 64)
}

// UnmarshalYAML accepts a sequence of numbers.
func (v *Vector) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("vector: line %d: expected a sequence of numbers: %w", node.Line, ErrInvalidOperand)
	}
	var components []float64
	if err := node.Decode(&components); err != nil {
		return fmt.Errorf("vector: line %d: %w", node.Line, err)
	}
	*v = New(components...)
	return nil
}
