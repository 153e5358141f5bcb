package fraction

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		input string
		want  Fraction
	}{
		{"2/5", MustNew(2, 5)},
		{" -13 / 2 ", MustNew(-13, 2)},
		{"6/-4", MustNew(-3, 2)},
		{"7", FromInt(7)},
		{"0/100", Zero},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			wantFraction(t, got, tc.want)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		input string
		want  error
	}{
		{"", ErrSyntax},
		{"a/b", ErrSyntax},
		{"1/", ErrSyntax},
		{"/2", ErrSyntax},
		{"1/2/3", ErrSyntax},
		{"1.5", ErrSyntax},
		{"3/0", ErrDivisionByZero},
		{"-9223372036854775808/-1", ErrOverflow},
	}
	for _, tc := range testCases {
		if _, err := Parse(tc.input); !errors.Is(err, tc.want) {
			t.Fatalf("Parse(%q): got %v, want %v", tc.input, err, tc.want)
		}
	}
}

func TestFraction_JSONText(t *testing.T) {
	type payload struct {
		Ratio Fraction `json:"ratio"`
	}
	data, err := json.Marshal(payload{Ratio: MustNew(4, -6)})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"ratio":"-2/3"}` {
		t.Fatalf("got %s, want %s", data, `{"ratio":"-2/3"}`)
	}

	var decoded payload
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	wantFraction(t, decoded.Ratio, MustNew(-2, 3))

	err = json.Unmarshal([]byte(`{"ratio":"1/0"}`), &decoded)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("got %v, want %v", err, ErrDivisionByZero)
	}
}
