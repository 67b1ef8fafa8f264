package dataset

import (
	"math"
	"testing"
)

func TestCoerce(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"float", 4.5, 4.5, true},
		{"int", 3, 3, true},
		{"numeric string", "2.5", 2.5, true},
		{"non-numeric string", "five", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
		{"nan", math.NaN(), 0, false},
		{"inf", math.Inf(1), 0, false},
		{"nested", map[string]any{"x": 1}, 0, false},
	}
	for _, tc := range cases {
		got, ok := Coerce(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("%s: Coerce(%v) = (%v,%v), want (%v,%v)", tc.name, tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRecordFloatDefaultsToZero(t *testing.T) {
	r := Record{"rating": "not a number", "price": nil}
	if r.Float("rating") != 0 {
		t.Fatalf("expected 0 for bad rating")
	}
	if r.Float("price") != 0 {
		t.Fatalf("expected 0 for null price")
	}
	if r.Float("missing") != 0 {
		t.Fatalf("expected 0 for absent field")
	}
}

func TestRecordStr(t *testing.T) {
	r := Record{"asin": "B001", "rating": 5.0}
	if r.Str("asin") != "B001" {
		t.Fatalf("unexpected asin %q", r.Str("asin"))
	}
	if r.Str("rating") != "" {
		t.Fatalf("non-string field should read as empty string")
	}
}
