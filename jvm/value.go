package jvm

import (
	"strconv"
	"strings"
)

// Value is an immutable typed literal: a boolean, a 32-bit integer, a
// character, or a homogeneous array of ints or chars. Values are
// comparable by Compare and usable as map keys via their encoding.
type Value struct {
	typ *Type

	boolVal bool
	intVal  int32
	charVal byte
	ints    []int32
	chars   []byte
}

// BoolValue creates a boolean value.
func BoolValue(v bool) Value {
	return Value{typ: Boolean, boolVal: v}
}

// IntValue creates an int value.
func IntValue(n int32) Value {
	return Value{typ: Int, intVal: n}
}

// CharValue creates a char value.
func CharValue(c byte) Value {
	return Value{typ: Char, charVal: c}
}

// IntArrayValue creates an int-array value. The elements are copied.
func IntArrayValue(ns ...int32) Value {
	elems := make([]int32, len(ns))
	copy(elems, ns)
	return Value{typ: ArrayOf(Int), ints: elems}
}

// CharArrayValue creates a char-array value. The elements are copied.
func CharArrayValue(cs ...byte) Value {
	elems := make([]byte, len(cs))
	copy(elems, cs)
	return Value{typ: ArrayOf(Char), chars: elems}
}

// Type returns the value's type.
func (v Value) Type() *Type { return v.typ }

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, error) {
	if v.typ != Boolean {
		return false, decodeErr(ErrUnsupportedValueShape, v.String(), "expected boolean, got %s", v.typ)
	}
	return v.boolVal, nil
}

// AsInt returns the int payload.
func (v Value) AsInt() (int32, error) {
	if v.typ != Int {
		return 0, decodeErr(ErrUnsupportedValueShape, v.String(), "expected int, got %s", v.typ)
	}
	return v.intVal, nil
}

// AsChar returns the char payload.
func (v Value) AsChar() (byte, error) {
	if v.typ != Char {
		return 0, decodeErr(ErrUnsupportedValueShape, v.String(), "expected char, got %s", v.typ)
	}
	return v.charVal, nil
}

// AsIntArray returns the int-array payload. The slice must not be mutated.
func (v Value) AsIntArray() ([]int32, error) {
	if v.typ != ArrayOf(Int) {
		return nil, decodeErr(ErrUnsupportedValueShape, v.String(), "expected int array, got %s", v.typ)
	}
	return v.ints, nil
}

// AsCharArray returns the char-array payload. The slice must not be mutated.
func (v Value) AsCharArray() ([]byte, error) {
	if v.typ != ArrayOf(Char) {
		return nil, decodeErr(ErrUnsupportedValueShape, v.String(), "expected char array, got %s", v.typ)
	}
	return v.chars, nil
}

// Encode returns the textual form of the value. A type/payload pairing
// outside the value grammar fails with unsupported-value-shape; the
// constructors make that unreachable, so hitting it is a defect.
func (v Value) Encode() (string, error) {
	switch v.typ {
	case Boolean:
		if v.boolVal {
			return "true", nil
		}
		return "false", nil
	case Int:
		return strconv.FormatInt(int64(v.intVal), 10), nil
	case Char:
		return "'" + string(v.charVal) + "'", nil
	}

	if v.typ != nil && v.typ.Kind() == KindArray {
		switch v.typ.Elem() {
		case Int:
			parts := make([]string, len(v.ints))
			for i, n := range v.ints {
				parts[i] = strconv.FormatInt(int64(n), 10)
			}
			return "[I:" + strings.Join(parts, ", ") + "]", nil
		case Char:
			parts := make([]string, len(v.chars))
			for i, c := range v.chars {
				parts[i] = "'" + string(c) + "'"
			}
			return "[C:" + strings.Join(parts, ", ") + "]", nil
		}
	}

	typeName := "nil"
	if v.typ != nil {
		typeName = v.typ.String()
	}
	return "", decodeErr(ErrUnsupportedValueShape, typeName, "cannot encode %s value", typeName)
}

// String returns the encoding, or a debug form for unencodable shapes.
func (v Value) String() string {
	s, err := v.Encode()
	if err != nil {
		if v.typ == nil {
			return "<zero value>"
		}
		return "<" + v.typ.String() + " value>"
	}
	return s
}

// Compare orders values lexicographically by their encoding.
func (v Value) Compare(o Value) int {
	a, _ := v.Encode()
	b, _ := o.Encode()
	return strings.Compare(a, b)
}

// DecodeValues decodes a top-level comma-separated value list, as used
// for argument lists. Empty input is an empty list.
func DecodeValues(input string) ([]Value, error) {
	p, err := newValueParser(input)
	if err != nil {
		return nil, err
	}
	values, err := p.parseCommaSeparatedValues()
	if err != nil {
		return nil, err
	}
	if err := p.stream.eof(); err != nil {
		return nil, err
	}
	return values, nil
}

// DecodeValue decodes exactly one value and rejects trailing tokens.
func DecodeValue(input string) (Value, error) {
	p, err := newValueParser(input)
	if err != nil {
		return Value{}, err
	}
	v, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	if err := p.stream.eof(); err != nil {
		return Value{}, err
	}
	return v, nil
}

// EncodeValues joins value encodings with ", ", the inverse of
// DecodeValues.
func EncodeValues(values []Value) (string, error) {
	parts := make([]string, len(values))
	for i, v := range values {
		s, err := v.Encode()
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, ", "), nil
}

// valueParser is a single-pass recursive parser over the token stream
// with one token of lookahead.
type valueParser struct {
	stream *tokenStream
}

func newValueParser(input string) (*valueParser, error) {
	tokens, err := tokenizeValues(input)
	if err != nil {
		return nil, err
	}
	return &valueParser{stream: newTokenStream(input, tokens)}, nil
}

// parseValue dispatches on the head token.
func (p *valueParser) parseValue() (Value, error) {
	switch tok := p.stream.head(); tok.kind {
	case tokenInt:
		n, err := p.parseInt()
		if err != nil {
			return Value{}, err
		}
		return IntValue(n), nil
	case tokenBool:
		b, err := p.parseBool()
		if err != nil {
			return Value{}, err
		}
		return BoolValue(b), nil
	case tokenChar:
		c, err := p.parseChar()
		if err != nil {
			return Value{}, err
		}
		return CharValue(c), nil
	case tokenOpenArray:
		return p.parseArray()
	default:
		return Value{}, decodeErrAt(ErrUnexpectedToken, p.stream.input, tok.pos, "expected a value, got %s", tok)
	}
}

func (p *valueParser) parseInt() (int32, error) {
	tok, err := p.stream.expect(tokenInt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(tok.value, 10, 32)
	if err != nil {
		return 0, decodeErrAt(ErrUnexpectedToken, p.stream.input, tok.pos, "integer out of range: %s", tok.value)
	}
	return int32(n), nil
}

func (p *valueParser) parseBool() (bool, error) {
	tok, err := p.stream.expect(tokenBool)
	if err != nil {
		return false, err
	}
	return tok.value == "true", nil
}

func (p *valueParser) parseChar() (byte, error) {
	tok, err := p.stream.expect(tokenChar)
	if err != nil {
		return 0, err
	}
	return tok.value[1], nil
}

// parseArray parses [I: v, v, …] or [C: v, v, …]. The opener fixes the
// element parser, so a wrong element type is caught as an unexpected
// token.
func (p *valueParser) parseArray() (Value, error) {
	opener, err := p.stream.expect(tokenOpenArray)
	if err != nil {
		return Value{}, err
	}

	switch opener.value {
	case "[I:":
		var elems []int32
		err := p.parseCommaSeparated(tokenCloseArray, func() error {
			n, err := p.parseInt()
			if err != nil {
				return err
			}
			elems = append(elems, n)
			return nil
		})
		if err != nil {
			return Value{}, err
		}
		if err := p.expectClose(opener); err != nil {
			return Value{}, err
		}
		return IntArrayValue(elems...), nil

	case "[C:":
		var elems []byte
		err := p.parseCommaSeparated(tokenCloseArray, func() error {
			c, err := p.parseChar()
			if err != nil {
				return err
			}
			elems = append(elems, c)
			return nil
		})
		if err != nil {
			return Value{}, err
		}
		if err := p.expectClose(opener); err != nil {
			return Value{}, err
		}
		return CharArrayValue(elems...), nil
	}

	// The tokenizer only emits [I: and [C: openers.
	return Value{}, decodeErrAt(ErrUnexpectedToken, p.stream.input, opener.pos, "unknown array opener %s", opener)
}

func (p *valueParser) expectClose(opener token) error {
	if p.stream.head().kind != tokenCloseArray {
		return decodeErrAt(ErrUnterminatedArray, p.stream.input, opener.pos, "array opened here is never closed")
	}
	p.stream.next()
	return nil
}

// parseCommaSeparated parses zero or more elements separated by commas,
// stopping at EOF or the terminator kind. A comma commits to another
// element, so trailing commas fail in the element parser.
func (p *valueParser) parseCommaSeparated(endBy tokenKind, parseElem func() error) error {
	head := p.stream.head()
	if head.kind == tokenEOF || head.kind == endBy {
		return nil
	}

	if err := parseElem(); err != nil {
		return err
	}
	for p.stream.head().kind == tokenComma {
		p.stream.next()
		if err := parseElem(); err != nil {
			return err
		}
	}
	return nil
}

// parseCommaSeparatedValues parses a list of arbitrary values.
func (p *valueParser) parseCommaSeparatedValues() ([]Value, error) {
	var values []Value
	err := p.parseCommaSeparated(tokenEOF, func() error {
		v, err := p.parseValue()
		if err != nil {
			return err
		}
		values = append(values, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}
