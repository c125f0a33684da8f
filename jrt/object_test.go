package jrt

import (
	"testing"
	"unsafe"
)

// ---------------------------------------------------------------------------
// Allocation tests
// ---------------------------------------------------------------------------

func TestNewCarriesDispatchTable(t *testing.T) {
	vt := NewVTable(nil, 3)
	ref := New(16, vt)
	if ref.IsNull() {
		t.Fatal("New returned a null reference")
	}
	if ref.VTablePtr() != vt {
		t.Errorf("VTablePtr() = %p, want %p", ref.VTablePtr(), vt)
	}
}

func TestNewFieldRegionWritable(t *testing.T) {
	const size = 64
	ref := New(size, nil)

	// Every byte of the requested field region must be writable and
	// must read back what was written.
	fields := unsafe.Slice((*byte)(FieldPointer(ref)), size)
	for i := range fields {
		fields[i] = byte(i)
	}
	for i := range fields {
		if fields[i] != byte(i) {
			t.Fatalf("field byte %d = %d, want %d", i, fields[i], byte(i))
		}
	}
}

func TestFieldPointerPastHeader(t *testing.T) {
	ref := New(8, nil)
	delta := uintptr(FieldPointer(ref)) - uintptr(ref.Pointer())
	if delta != headerSize {
		t.Errorf("field pointer offset = %d, want %d", delta, headerSize)
	}
}

func TestAllocRawBuffer(t *testing.T) {
	ref := Alloc(32, nil)
	if ref.Pointer() == nil {
		t.Fatal("Alloc returned a nil data pointer")
	}
	if ref.VTablePtr() != nil {
		t.Error("raw allocation should carry the vtable it was given (nil)")
	}
}

func TestNullRef(t *testing.T) {
	if !Null.IsNull() {
		t.Error("Null.IsNull() = false")
	}
	if New(8, nil).IsNull() {
		t.Error("allocated reference reported as null")
	}
}

func TestHashIsDeterministic(t *testing.T) {
	a := New(8, nil)
	b := New(8, nil)
	if Hash(a) != Hash(a) {
		t.Error("Hash not stable for the same reference")
	}
	// Distinct objects occupy distinct storage, so their low pointer
	// bits differ in practice.
	if a.Pointer() == b.Pointer() {
		t.Error("two allocations share a data pointer")
	}
}

func TestNewObjectsHaveDistinctMonitors(t *testing.T) {
	a := New(8, nil)
	b := New(8, nil)
	if monitorOf(a) == monitorOf(b) {
		t.Error("two objects share a monitor")
	}
}
