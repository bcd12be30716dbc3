package stringify_test

import (
	"errors"
	"math"
	"testing"

	"github.com/goliatone/go-htmltag/pkg/stringify"
)

type level int

type label string

type point struct{ X, Y int }

type named struct{ name string }

func (n named) String() string { return "named:" + n.name }

type marker struct{}

func (marker) TrustedHTML() string { return "<b>t</b>" }

func TestString(t *testing.T) {
	answer := 42
	var nilInt *int
	var nilNamed *named

	cases := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "string", in: "text", want: "text"},
		{name: "bytes", in: []byte("raw"), want: "raw"},
		{name: "true", in: true, want: "true"},
		{name: "false", in: false, want: "false"},
		{name: "int", in: -7, want: "-7"},
		{name: "int64", in: int64(1) << 40, want: "1099511627776"},
		{name: "uint8", in: uint8(255), want: "255"},
		{name: "zero", in: 0, want: "0"},
		{name: "float", in: 3.25, want: "3.25"},
		{name: "float integral", in: 123456789.0, want: "123456789"},
		{name: "float32", in: float32(0.1), want: "0.1"},
		{name: "small fixed", in: 0.000001, want: "0.000001"},
		{name: "small exponent", in: 1e-7, want: "1e-7"},
		{name: "large exponent", in: 1e21, want: "1e+21"},
		{name: "huge mantissa", in: 1.5e300, want: "1.5e+300"},
		{name: "negative zero", in: math.Copysign(0, -1), want: "0"},
		{name: "nan", in: math.NaN(), want: "NaN"},
		{name: "inf", in: math.Inf(1), want: "Infinity"},
		{name: "negative inf", in: math.Inf(-1), want: "-Infinity"},
		{name: "named int", in: level(3), want: "3"},
		{name: "named string", in: label("lbl"), want: "lbl"},
		{name: "stringer", in: named{name: "n"}, want: "named:n"},
		{name: "trusted marker has no special case", in: marker{}, want: "{}"},
		{name: "error", in: errors.New("boom"), want: "boom"},
		{name: "pointer", in: &answer, want: "42"},
		{name: "nil pointer", in: nilInt, want: ""},
		{name: "nil stringer pointer", in: nilNamed, want: ""},
		{name: "struct", in: point{X: 1, Y: 2}, want: "{1 2}"},
		{name: "slice", in: []int{1, 2}, want: "[1 2]"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := stringify.String(tc.in); got != tc.want {
				t.Fatalf("String(%#v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFalsy(t *testing.T) {
	var nilInt *int
	one := 1

	falsy := []any{nil, nilInt, "", false, 0, int8(0), uint64(0), 0.0, float32(0), math.NaN(), level(0), label("")}
	for _, v := range falsy {
		if !stringify.Falsy(v) {
			t.Fatalf("expected %#v to be falsy", v)
		}
	}

	truthy := []any{"0", " ", true, 1, -1, 0.5, math.Inf(-1), &one, []int{}, map[string]int{}, point{}, named{}}
	for _, v := range truthy {
		if stringify.Falsy(v) {
			t.Fatalf("expected %#v to be truthy", v)
		}
	}
}

func TestNil(t *testing.T) {
	var nilInt *int
	if !stringify.Nil(nil) || !stringify.Nil(nilInt) {
		t.Fatalf("expected nil values to report Nil")
	}
	if stringify.Nil(0) || stringify.Nil("") {
		t.Fatalf("expected zero values not to report Nil")
	}
}
