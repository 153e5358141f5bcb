package vector

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEncodeDecode(t *testing.T) {
	orig := New(0.0, 1.5, -2.25, 3.75)

	blob := Encode(orig)
	if len(blob) != 32 {
		t.Fatalf("blob length: got %d, want 32", len(blob))
	}

	decoded, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	wantVec(t, decoded, orig)

	var viaBinary Vector
	data, err := orig.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	if err := viaBinary.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	wantVec(t, viaBinary, orig)
}

func TestEncodeDecode_Empty(t *testing.T) {
	if blob := Encode(Vector{}); len(blob) != 0 {
		t.Fatalf("Encode(<>): got %d bytes, want 0", len(blob))
	}
	v, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil) failed: %v", err)
	}
	if v.Len() != 0 {
		t.Fatalf("Decode(nil): got %v, want <>", v)
	}
}

func TestDecode_InvalidLength(t *testing.T) {
	if _, err := Decode([]byte{1, 2, 3}); !errors.Is(err, ErrInvalidOperand) {
		t.Fatalf("got %v, want %v", err, ErrInvalidOperand)
	}
}

func TestYAML(t *testing.T) {
	type fixture struct {
		Name   string `yaml:"name"`
		Vector Vector `yaml:"vector"`
	}

	out, err := yaml.Marshal(fixture{Name: "f", Vector: New(3, 2, 1.5)})
	if err != nil {
		t.Fatalf("yaml.Marshal failed: %v", err)
	}
	if want := "name: f\nvector: [3, 2, 1.5]\n"; string(out) != want {
		t.Fatalf("got %q, want %q", out, want)
	}

	var decoded fixture
	if err := yaml.Unmarshal([]byte("name: g\nvector:\n  - -3\n  - 2\n  - 0.5\n"), &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v", err)
	}
	wantVec(t, decoded.Vector, New(-3, 2, 0.5))

	if err := yaml.Unmarshal([]byte("vector: 7\n"), &decoded); !errors.Is(err, ErrInvalidOperand) {
		t.Fatalf("got %v, want %v", err, ErrInvalidOperand)
	}
	if err := yaml.Unmarshal([]byte("vector: [1, x]\n"), &decoded); err == nil {
		t.Fatalf("non-numeric component succeeded, want error")
	}
}
