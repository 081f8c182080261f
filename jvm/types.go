package jvm

import (
	"strings"
)

// Kind classifies JVM types.
type Kind uint8

const (
	KindBoolean Kind = iota
	KindInt
	KindByte
	KindChar
	KindLong
	KindFloat
	KindDouble
	KindReference
	KindObject
	KindArray
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindInt:
		return "int"
	case KindByte:
		return "byte"
	case KindChar:
		return "char"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindReference:
		return "reference"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Type is an immutable JVM type. All construction goes through the
// canonical constructors below, so two types with the same encoding are
// the same pointer and *Type can be used directly as a map key.
type Type struct {
	kind  Kind
	elem  *Type     // Array element type
	class ClassName // Object class name
}

// Primitive and reference singletons.
var (
	Boolean   = &Type{kind: KindBoolean}
	Int       = &Type{kind: KindInt}
	Byte      = &Type{kind: KindByte}
	Char      = &Type{kind: KindChar}
	Long      = &Type{kind: KindLong}
	Float     = &Type{kind: KindFloat}
	Double    = &Type{kind: KindDouble}
	Reference = &Type{kind: KindReference}
)

// Kind returns the type kind.
func (t *Type) Kind() Kind { return t.kind }

// Elem returns the element type of an array, or nil.
func (t *Type) Elem() *Type { return t.elem }

// Class returns the class name of an object type.
func (t *Type) Class() ClassName { return t.class }

// Encode returns the descriptor encoding of the type.
// Reference encodes as "A" but is never produced by DecodeType; the
// benchmark corpus only ever writes it, not reads it.
func (t *Type) Encode() string {
	switch t.kind {
	case KindBoolean:
		return "Z"
	case KindInt:
		return "I"
	case KindByte:
		return "B"
	case KindChar:
		return "C"
	case KindLong:
		return "J"
	case KindFloat:
		return "F"
	case KindDouble:
		return "D"
	case KindReference:
		return "A"
	case KindObject:
		return "L" + t.class.Slashed() + ";"
	case KindArray:
		return "[" + t.elem.Encode()
	default:
		return ""
	}
}

// String returns the descriptor encoding.
func (t *Type) String() string { return t.Encode() }

// Compare orders types lexicographically by their encoding.
func (t *Type) Compare(o *Type) int {
	return strings.Compare(t.Encode(), o.Encode())
}

// DecodeType decodes one type from the front of input and returns the
// unconsumed remainder. Callers chain remainders to decode sequences.
//
// Tags: Z I B C J F D are primitives, L…; names an object (slash form),
// and each leading [ wraps the base type in one more array level.
func DecodeType(input string) (*Type, string, error) {
	depth := 0
	i := 0
	var t *Type

scan:
	for i < len(input) {
		switch input[i] {
		case 'Z':
			t = Boolean
		case 'I':
			t = Int
		case 'B':
			t = Byte
		case 'C':
			t = Char
		case 'J':
			t = Long
		case 'F':
			t = Float
		case 'D':
			t = Double
		case 'L':
			semi := strings.IndexByte(input[i:], ';')
			if semi < 0 {
				return nil, "", decodeErrAt(ErrMalformedType, input, i, "object type missing ';'")
			}
			t = ObjectOf(classNameFromSlashed(input[i+1 : i+semi]))
			i += semi
		case '[':
			depth++
			i++
			continue
		default:
			return nil, "", decodeErrAt(ErrMalformedType, input, i, "unknown type tag %q", input[i])
		}
		break scan
	}

	if t == nil {
		return nil, "", decodeErr(ErrMalformedType, input, "missing type tag")
	}

	for ; depth > 0; depth-- {
		t = ArrayOf(t)
	}
	return t, input[i+1:], nil
}

// ParameterType is the ordered parameter list of a method. Order is
// argument order; encode is the separator-free concatenation of the
// element encodings.
type ParameterType []*Type

// Len returns the number of parameters.
func (p ParameterType) Len() int { return len(p) }

// At returns the i-th parameter type.
func (p ParameterType) At(i int) *Type { return p[i] }

// Encode concatenates the element encodings.
func (p ParameterType) Encode() string {
	var b strings.Builder
	for _, t := range p {
		b.WriteString(t.Encode())
	}
	return b.String()
}

// Compare orders parameter lists elementwise, shorter first on a tie.
func (p ParameterType) Compare(o ParameterType) int {
	for i := 0; i < len(p) && i < len(o); i++ {
		if c := p[i].Compare(o[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(p) < len(o):
		return -1
	case len(p) > len(o):
		return 1
	}
	return 0
}

// DecodeParams decodes a concatenated type sequence, consuming the whole
// input. Empty input is a zero-length parameter list.
func DecodeParams(input string) (ParameterType, error) {
	var params ParameterType
	rest := input
	for rest != "" {
		t, more, err := DecodeType(rest)
		if err != nil {
			return nil, decodeErr(ErrMalformedParams, input, "%v", err)
		}
		if len(more) >= len(rest) {
			// A decode that consumes nothing would loop forever.
			return nil, decodeErr(ErrMalformedParams, input, "type decode made no progress at %q", rest)
		}
		rest = more
		params = append(params, t)
	}
	return params, nil
}
