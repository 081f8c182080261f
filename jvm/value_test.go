package jvm

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

// ============================================================
// Value decode
// ============================================================

func TestDecodeValues_Scalars(t *testing.T) {
	values, err := DecodeValues("1, true, 'a', -7, false")
	if err != nil {
		t.Fatalf("DecodeValues failed: %v", err)
	}
	want := []Value{IntValue(1), BoolValue(true), CharValue('a'), IntValue(-7), BoolValue(false)}
	if len(values) != len(want) {
		t.Fatalf("got %d values, want %d", len(values), len(want))
	}
	for i := range want {
		if values[i].Compare(want[i]) != 0 {
			t.Errorf("value %d = %s, want %s", i, values[i], want[i])
		}
	}
}

func TestDecodeValues_Empty(t *testing.T) {
	values, err := DecodeValues("")
	if err != nil {
		t.Fatalf("DecodeValues failed: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("got %d values, want 0", len(values))
	}
}

func TestDecodeValue_IntArray(t *testing.T) {
	v, err := DecodeValue("[I:1, 2, 3]")
	if err != nil {
		t.Fatalf("DecodeValue failed: %v", err)
	}
	if v.Type() != ArrayOf(Int) {
		t.Fatalf("type = %s, want [I", v.Type())
	}
	ns, err := v.AsIntArray()
	if err != nil {
		t.Fatalf("AsIntArray failed: %v", err)
	}
	if !reflect.DeepEqual(ns, []int32{1, 2, 3}) {
		t.Errorf("payload = %v", ns)
	}
	enc, err := v.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if enc != "[I:1, 2, 3]" {
		t.Errorf("encode = %q, want %q", enc, "[I:1, 2, 3]")
	}
}

func TestDecodeValue_CharArray(t *testing.T) {
	v, err := DecodeValue("[C:'a', 'b']")
	if err != nil {
		t.Fatalf("DecodeValue failed: %v", err)
	}
	cs, err := v.AsCharArray()
	if err != nil {
		t.Fatalf("AsCharArray failed: %v", err)
	}
	if string(cs) != "ab" {
		t.Errorf("payload = %q", cs)
	}
	enc, err := v.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if enc != "[C:'a', 'b']" {
		t.Errorf("encode = %q", enc)
	}
}

func TestDecodeValue_EmptyArrays(t *testing.T) {
	for _, input := range []string{"[I:]", "[C:]"} {
		t.Run(input, func(t *testing.T) {
			v, err := DecodeValue(input)
			if err != nil {
				t.Fatalf("DecodeValue failed: %v", err)
			}
			enc, err := v.Encode()
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if enc != input {
				t.Errorf("encode = %q, want %q", enc, input)
			}
		})
	}
}

func TestDecodeValues_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"1",
		"true",
		"'x'",
		"-42",
		"[I:1, 2, 3]",
		"[C:'a', 'b']",
		"1, true, 'a'",
		"[I:], [C:'z'], 0",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			values, err := DecodeValues(input)
			if err != nil {
				t.Fatalf("DecodeValues failed: %v", err)
			}
			got, err := EncodeValues(values)
			if err != nil {
				t.Fatalf("EncodeValues failed: %v", err)
			}
			if got != input {
				t.Errorf("round trip = %q, want %q", got, input)
			}
		})
	}
}

func TestDecodeValues_Rejects(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"[I:1,]", ErrUnexpectedToken},  // trailing comma commits to another element
		{"[I:1, 2", ErrUnterminatedArray},
		{"[I:'a']", ErrUnexpectedToken}, // wrong element type
		{"[C:1]", ErrUnexpectedToken},
		{"1 2", ErrUnexpectedToken}, // missing comma
		{"1,", ErrUnexpectedToken},
		{",1", ErrUnexpectedToken},
		{"]", ErrUnexpectedToken},
		{"x", ErrUnrecognizedToken},
		{"2147483648", ErrUnexpectedToken}, // out of 32-bit range
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := DecodeValues(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodeValue_RejectsTrailing(t *testing.T) {
	if _, err := DecodeValue("1, 2"); !errors.Is(err, ErrUnexpectedToken) {
		t.Errorf("err = %v, want unexpected token", err)
	}
}

// ============================================================
// Value encode and ordering
// ============================================================

func TestValue_EncodeScalars(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{BoolValue(true), "true"},
		{BoolValue(false), "false"},
		{IntValue(0), "0"},
		{IntValue(-17), "-17"},
		{CharValue('x'), "'x'"},
		{IntArrayValue(1, 2, 3), "[I:1, 2, 3]"},
		{CharArrayValue('a', 'b'), "[C:'a', 'b']"},
		{IntArrayValue(), "[I:]"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := tt.value.Encode()
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("encode = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValue_EncodeRejectsBadShape(t *testing.T) {
	if _, err := (Value{}).Encode(); !errors.Is(err, ErrUnsupportedValueShape) {
		t.Errorf("err = %v, want unsupported value shape", err)
	}
}

func TestValue_Accessors(t *testing.T) {
	if n, err := IntValue(5).AsInt(); err != nil || n != 5 {
		t.Errorf("AsInt = (%d, %v)", n, err)
	}
	if b, err := BoolValue(true).AsBool(); err != nil || !b {
		t.Errorf("AsBool = (%v, %v)", b, err)
	}
	if c, err := CharValue('q').AsChar(); err != nil || c != 'q' {
		t.Errorf("AsChar = (%q, %v)", c, err)
	}
	if _, err := IntValue(5).AsBool(); !errors.Is(err, ErrUnsupportedValueShape) {
		t.Errorf("AsBool on int = %v", err)
	}
}

func TestValue_SortingIdempotent(t *testing.T) {
	values, err := DecodeValues("true, 'a', [I:2], -1, 10, [C:'b']")
	if err != nil {
		t.Fatalf("DecodeValues failed: %v", err)
	}

	once := append([]Value(nil), values...)
	sort.Slice(once, func(i, j int) bool { return once[i].Compare(once[j]) < 0 })
	twice := append([]Value(nil), once...)
	sort.Slice(twice, func(i, j int) bool { return twice[i].Compare(twice[j]) < 0 })

	for i := range once {
		if once[i].Compare(twice[i]) != 0 {
			t.Fatalf("sorting is not idempotent at %d", i)
		}
	}
}
