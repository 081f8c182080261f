package jvm

import (
	"sync"
)

// Canonical type tables. Process-wide, append-only, never evicted.
// Keys are structural: the element pointer for arrays (itself canonical)
// and the class name for objects.
var (
	internMu    sync.Mutex
	arrayTypes  = make(map[*Type]*Type)
	objectTypes = make(map[ClassName]*Type)
)

// ArrayOf returns the canonical array type with the given element type.
// Repeated calls with the same element return the identical pointer.
func ArrayOf(elem *Type) *Type {
	if elem == nil {
		panic("jvm: array of nil type")
	}
	internMu.Lock()
	defer internMu.Unlock()
	if t, ok := arrayTypes[elem]; ok {
		return t
	}
	t := &Type{kind: KindArray, elem: elem}
	arrayTypes[elem] = t
	return t
}

// ObjectOf returns the canonical object type for a class name.
func ObjectOf(class ClassName) *Type {
	internMu.Lock()
	defer internMu.Unlock()
	if t, ok := objectTypes[class]; ok {
		return t
	}
	t := &Type{kind: KindObject, class: class}
	objectTypes[class] = t
	return t
}
