package jrt

import (
	"unsafe"
)

// ---------------------------------------------------------------------------
// Object layout
// ---------------------------------------------------------------------------

// objectHeader precedes all caller-defined field data. It holds the
// handle of the object's embedded monitor; compiled code computes field
// offsets relative to the end of the header.
type objectHeader struct {
	monitor uint64
}

const headerSize = unsafe.Sizeof(objectHeader{})

// Alloc reserves size bytes of storage with no object header and
// returns a reference tagged with the supplied dispatch table. It is
// the raw allocation primitive; monitor operations on the result are
// undefined.
func Alloc(size uintptr, vt *VTable) Ref {
	return Ref{object: allocBlock(size), vtable: vt}
}

// New allocates an object with fieldSize bytes of field storage behind
// an initialized header. The embedded monitor starts in the unlocked,
// no-waiters state.
func New(fieldSize uintptr, vt *VTable) Ref {
	ref := Ref{object: allocBlock(headerSize + fieldSize), vtable: vt}
	hdr := (*objectHeader)(ref.object)
	hdr.monitor = registerMonitor(newMonitor())
	return ref
}

// FieldPointer returns the address of the object's field storage, just
// past the header. Field-offset arithmetic performed by compiled code
// is relative to this address.
func FieldPointer(ref Ref) unsafe.Pointer {
	return unsafe.Add(ref.object, headerSize)
}

// monitorOf resolves the monitor embedded in the object's header.
func monitorOf(ref Ref) *Monitor {
	hdr := (*objectHeader)(ref.object)
	m := monitorByID(hdr.monitor)
	if m == nil {
		fatalf("Reference has no monitor. Aborting.")
	}
	return m
}
