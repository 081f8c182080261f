package jvm

import (
	"encoding/json"
	"fmt"
	"math"
)

// The decompiled corpus names types in JSON with plain words rather than
// descriptor tags. This bridge covers the names the corpus actually
// emits.

// TypeFromJSON maps a corpus JSON type name to a canonical type.
func TypeFromJSON(name string) (*Type, error) {
	switch name {
	case "int", "integer":
		return Int, nil
	case "boolean":
		return Boolean, nil
	case "char":
		return Char, nil
	case "ref":
		return Reference, nil
	default:
		return nil, fmt.Errorf("jvm: unknown json type %q", name)
	}
}

// jsonValue is the corpus JSON shape: {"type": ..., "value": ...}.
type jsonValue struct {
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

// ValueFromJSON decodes a corpus JSON value object into a Value.
func ValueFromJSON(data []byte) (Value, error) {
	var raw jsonValue
	if err := json.Unmarshal(data, &raw); err != nil {
		return Value{}, fmt.Errorf("jvm: json parse: %w", err)
	}

	t, err := TypeFromJSON(raw.Type)
	if err != nil {
		return Value{}, err
	}

	switch t {
	case Boolean:
		b, ok := raw.Value.(bool)
		if !ok {
			return Value{}, fmt.Errorf("jvm: boolean json value has payload %T", raw.Value)
		}
		return BoolValue(b), nil

	case Int:
		f, ok := raw.Value.(float64)
		if !ok || f != math.Trunc(f) {
			return Value{}, fmt.Errorf("jvm: int json value has payload %v", raw.Value)
		}
		return IntValue(int32(f)), nil

	case Char:
		s, ok := raw.Value.(string)
		if !ok || len(s) != 1 {
			return Value{}, fmt.Errorf("jvm: char json value has payload %v", raw.Value)
		}
		return CharValue(s[0]), nil

	default:
		return Value{}, fmt.Errorf("jvm: cannot build a %s value from json", t.Kind())
	}
}
