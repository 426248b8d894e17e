package niche

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func stringsReader(s string) *strings.Reader { return strings.NewReader(s) }

func TestFloatRepr(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{0.1, "0.1"},
		{1e-7, "1e-07"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{123.456, "123.456"},
		{1e16, "1e+16"},
		{1234567890123456.0, "1234567890123456.0"},
		{12345678901234567890.0, "1.2345678901234567e+19"},
		{-2.5, "-2.5"},
		{0, "0.0"},
		{math.Inf(1), "inf"},
	}
	for _, tc := range cases {
		if got := FloatRepr(tc.in); got != tc.want {
			t.Fatalf("FloatRepr(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRepr(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "None"},
		{true, "True"},
		{json.Number("42"), "42"},
		{json.Number("-0"), "0"},
		{json.Number("1.50"), "1.5"},
		{json.Number("2e3"), "2000.0"},
		{"it's", `"it's"`},
		{"plain", `'plain'`},
		{"tab\there", `'tab\there'`},
		{"ctl\x01", `'ctl\x01'`},
		{[]any{"a", json.Number("1"), nil}, `['a', 1, None]`},
		{map[string]any{"b": false, "a": []any{}}, `{'a': [], 'b': False}`},
	}
	for _, tc := range cases {
		if got := Repr(tc.in); got != tc.want {
			t.Fatalf("Repr(%#v) = %s, want %s", tc.in, got, tc.want)
		}
	}
	if Str("verbatim 'x'") != "verbatim 'x'" {
		t.Fatal("Str must keep strings verbatim")
	}
}

func TestDumps(t *testing.T) {
	got := Dumps(map[string]any{"z": json.Number("1.0"), "a": []any{"\n", true}})
	want := `{"a": ["\n", true], "z": 1.0}`
	if got != want {
		t.Fatalf("Dumps = %s, want %s", got, want)
	}
	if Dumps("\x7f") != `"\u007f"` {
		t.Fatalf("DEL escape = %s", Dumps("\x7f"))
	}
}
