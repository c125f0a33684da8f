package jrt

import (
	"unsafe"
)

// Ref is a fat pointer denoting a heap object or null.
//
// A Ref pairs a data pointer with the dispatch table for the object's
// concrete type. Refs are value-copied freely; the runtime performs no
// ownership tracking and no reclamation. A nil vtable marks a data
// pointer that is not a normal heap object (raw byte buffers such as
// boxed strings ride on this escape hatch).
type Ref struct {
	object unsafe.Pointer
	vtable *VTable
}

// Null is the null reference.
var Null = Ref{}

// IsNull reports whether the reference denotes no object.
func (r Ref) IsNull() bool {
	return r.object == nil && r.vtable == nil
}

// Pointer returns the raw data pointer.
func (r Ref) Pointer() unsafe.Pointer {
	return r.object
}

// VTablePtr returns the dispatch table the reference was created with.
func (r Ref) VTablePtr() *VTable {
	return r.vtable
}

// Hash derives the identity hash from the data pointer's bit pattern.
func Hash(r Ref) uint32 {
	return uint32(uintptr(r.object))
}
