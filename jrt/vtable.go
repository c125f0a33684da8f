package jrt

// VTable holds the method dispatch table for a concrete type.
//
// Methods are stored in an array indexed by compile-time-assigned slot,
// so call sites resolve a virtual call with a single read. A subclass
// table extends a stable prefix of its parent's table; overriding a
// slot never moves the slots around it. The itable region for
// interface dispatch trails the method array.
type VTable struct {
	methods []Method
	itable  []ITableEntry
}

// Method is an opaque compiled-code entry point held in a dispatch
// table slot. The runtime never calls through a Method except for the
// slots it installs itself; a nil Method marks an abstract or
// uncompiled slot.
type Method any

// InterfaceID is the unique identity of an interface type. Identities
// are compared by pointer, never by name.
type InterfaceID struct {
	Name string
}

// ITableEntry maps an interface identity to the base slot of that
// interface's method block within the vtable's method array.
type ITableEntry struct {
	Iface  *InterfaceID
	Offset uint32
}

// NewVTable creates a dispatch table with the given slot count,
// copying the parent's slots into the stable prefix. Tables are
// immutable once construction finishes and may be read concurrently.
func NewVTable(parent *VTable, slots uint32) *VTable {
	vt := &VTable{methods: make([]Method, slots)}
	if parent != nil {
		copy(vt.methods, parent.methods)
	}
	return vt
}

// Length returns the number of method slots.
func (vt *VTable) Length() uint32 {
	return uint32(len(vt.methods))
}

// SetMethod installs a method at the given slot.
func (vt *VTable) SetMethod(index uint32, m Method) {
	vt.methods[index] = m
}

// MethodAt returns the method at the given slot without dispatch.
func (vt *VTable) MethodAt(index uint32) Method {
	return vt.methods[index]
}

// AddInterface appends an itable entry for the given interface
// identity and method-block offset.
func (vt *VTable) AddInterface(iface *InterfaceID, offset uint32) {
	vt.itable = append(vt.itable, ITableEntry{Iface: iface, Offset: offset})
}

// Interfaces returns the itable entries in insertion order.
func (vt *VTable) Interfaces() []ITableEntry {
	return vt.itable
}

// Lookup resolves a virtual call: the method at the given slot of the
// receiver's dispatch table. Slot validity is the compiler's contract;
// this is the hot path and adds no checking of its own.
func Lookup(ref Ref, index uint32) Method {
	return ref.vtable.methods[index]
}

// LookupInterface resolves an interface call: a linear scan of the
// receiver's itable for the interface identity, then the method at
// index within that interface's block. Tables are small enough that
// the scan beats a map and allocates nothing. A miss returns nil; the
// call site must treat that as a fatal dispatch failure, since the
// compiler guarantees it cannot happen for well-typed programs.
func LookupInterface(ref Ref, iface *InterfaceID, index uint32) Method {
	for _, e := range ref.vtable.itable {
		if e.Iface == iface {
			return ref.vtable.methods[e.Offset+index]
		}
	}
	return nil
}
