package jvm

import (
	"regexp"
	"strings"
)

// ClassName is a dotted class name (a.b.C). Inner classes use the $
// syntax (a.b.C$Inner). Splitting on "." and rejoining is lossless.
type ClassName struct {
	name string
}

// DecodeClassName wraps a dotted class name string.
func DecodeClassName(input string) ClassName {
	return ClassName{name: input}
}

// ClassNameFromParts joins name elements with dots.
func ClassNameFromParts(parts ...string) ClassName {
	return ClassName{name: strings.Join(parts, ".")}
}

// classNameFromSlashed converts the slash form used inside L…; type
// encodings back to the dotted form.
func classNameFromSlashed(slashed string) ClassName {
	return ClassName{name: strings.ReplaceAll(slashed, "/", ".")}
}

// Parts returns the dotted name elements.
func (c ClassName) Parts() []string { return strings.Split(c.name, ".") }

// Packages returns all but the last name element.
func (c ClassName) Packages() []string {
	parts := c.Parts()
	return parts[:len(parts)-1]
}

// Name returns the unqualified class name.
func (c ClassName) Name() string {
	parts := c.Parts()
	return parts[len(parts)-1]
}

// Encode returns the dotted form.
func (c ClassName) Encode() string { return c.name }

// Dotted returns the dotted form.
func (c ClassName) Dotted() string { return c.name }

// Slashed returns the slash form used inside type encodings.
func (c ClassName) Slashed() string { return strings.ReplaceAll(c.name, ".", "/") }

func (c ClassName) String() string { return c.name }

// Compare orders class names by their dotted form.
func (c ClassName) Compare(o ClassName) int { return strings.Compare(c.name, o.name) }

// The method grammar is name:(params)return. The name group is greedy,
// so a name containing colons still parses: the split lands on the last
// ":(…)" pair in the input.
var methodIDPattern = regexp.MustCompile(`^(?P<name>.*):\((?P<params>.*)\)(?P<ret>.*)$`)

// MethodID identifies a method overload: a name, the ordered parameter
// types, and an optional return type (nil means void, encoded "V").
type MethodID struct {
	Name   string
	Params ParameterType
	Return *Type
}

// DecodeMethodID decodes a name:(params)return descriptor.
func DecodeMethodID(input string) (MethodID, error) {
	m := methodIDPattern.FindStringSubmatch(input)
	if m == nil {
		return MethodID{}, decodeErr(ErrInvalidMethodID, input, "expected name:(params)return")
	}
	name, rawParams, rawRet := m[1], m[2], m[3]

	params, err := DecodeParams(rawParams)
	if err != nil {
		return MethodID{}, err
	}

	var ret *Type
	if rawRet != "V" {
		var rest string
		ret, rest, err = DecodeType(rawRet)
		if err != nil || rest != "" {
			return MethodID{}, decodeErr(ErrBadReturnType, input, "cannot decode return type %q", rawRet)
		}
	}

	return MethodID{Name: name, Params: params, Return: ret}, nil
}

// Encode returns the name:(params)return descriptor.
func (m MethodID) Encode() string {
	ret := "V"
	if m.Return != nil {
		ret = m.Return.Encode()
	}
	return m.Name + ":(" + m.Params.Encode() + ")" + ret
}

func (m MethodID) String() string { return m.Encode() }

// Compare orders method ids by (name, params, return type).
func (m MethodID) Compare(o MethodID) int {
	if c := strings.Compare(m.Name, o.Name); c != 0 {
		return c
	}
	if c := m.Params.Compare(o.Params); c != 0 {
		return c
	}
	return strings.Compare(encodeReturn(m.Return), encodeReturn(o.Return))
}

func encodeReturn(t *Type) string {
	if t == nil {
		return "V"
	}
	return t.Encode()
}

// FieldID identifies a field: a name and its type. Grammar is name:Type.
type FieldID struct {
	Name string
	Type *Type
}

// DecodeFieldID decodes a name:Type descriptor. The type must consume
// the entire remainder after the first colon.
func DecodeFieldID(input string) (FieldID, error) {
	idx := strings.IndexByte(input, ':')
	if idx < 0 {
		return FieldID{}, decodeErr(ErrInvalidFieldID, input, "missing ':' separator")
	}
	name, rawType := input[:idx], input[idx+1:]

	t, rest, err := DecodeType(rawType)
	if err != nil {
		return FieldID{}, err
	}
	if rest != "" {
		return FieldID{}, decodeErr(ErrExtraCharacters, input, "trailing %q after field type", rest)
	}
	return FieldID{Name: name, Type: t}, nil
}

// Encode returns the name:Type descriptor.
func (f FieldID) Encode() string {
	return f.Name + ":" + f.Type.Encode()
}

func (f FieldID) String() string { return f.Encode() }

// Compare orders field ids by (name, type).
func (f FieldID) Compare(o FieldID) int {
	if c := strings.Compare(f.Name, o.Name); c != 0 {
		return c
	}
	return f.Type.Compare(o.Type)
}

// Encodable is anything with a descriptor encoding; Absolute extensions
// must provide one.
type Encodable interface {
	Encode() string
}

// The class-name group is greedy: the split is always on the last dot,
// and there is no backtracking to an earlier dot if the extension
// decoder rejects the suffix. Class names and method names may both
// contain dots; this policy matches the corpus.
var absolutePattern = regexp.MustCompile(`^(?P<class>.+)\.(?P<rest>.*)$`)

// Absolute binds a class name to a member descriptor, fully qualifying
// a class member: ClassName.extension.
type Absolute[T Encodable] struct {
	ClassName ClassName
	Extension T
}

// DecodeAbsolute splits a ClassName.extension string on its last dot
// and decodes the suffix with the given decoder.
func DecodeAbsolute[T Encodable](input string, decode func(string) (T, error)) (Absolute[T], error) {
	m := absolutePattern.FindStringSubmatch(input)
	if m == nil {
		return Absolute[T]{}, decodeErr(ErrInvalidAbsoluteName, input, "expected classname.extension")
	}
	ext, err := decode(m[2])
	if err != nil {
		return Absolute[T]{}, err
	}
	return Absolute[T]{ClassName: DecodeClassName(m[1]), Extension: ext}, nil
}

// Encode returns classname.extension.
func (a Absolute[T]) Encode() string {
	return a.ClassName.Encode() + "." + a.Extension.Encode()
}

func (a Absolute[T]) String() string { return a.Encode() }

// Compare orders absolutes by (classname, extension encoding).
func (a Absolute[T]) Compare(o Absolute[T]) int {
	if c := a.ClassName.Compare(o.ClassName); c != 0 {
		return c
	}
	return strings.Compare(a.Extension.Encode(), o.Extension.Encode())
}
