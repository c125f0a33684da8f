package jrt

import (
	"unsafe"
)

// ---------------------------------------------------------------------------
// Array layout
// ---------------------------------------------------------------------------

// arrayHeader sits at the start of an array object's field storage,
// immediately followed by length*width bytes of elements. Both fields
// are fixed at construction; arrays are not resizable.
type arrayHeader struct {
	length uint32
	_      uint32
	width  uint64
}

const arrayHeaderSize = unsafe.Sizeof(arrayHeader{})

// RefWidth is the element width of a reference array.
const RefWidth = uint64(unsafe.Sizeof(Ref{}))

// ArrayVTable is the generic dispatch table attached to every array
// reference. Compiled code narrows it to java.lang.Object's table at
// bootstrap.
var ArrayVTable = NewVTable(nil, 0)

// NewArray allocates the header and element storage as one object
// block and writes length and width into the header.
func NewArray(length uint32, width uint64) Ref {
	ref := New(arrayHeaderSize+uintptr(length)*uintptr(width), ArrayVTable)
	hdr := (*arrayHeader)(FieldPointer(ref))
	hdr.length = length
	hdr.width = width
	return ref
}

// ArrayLength returns the element count written at construction.
func ArrayLength(ref Ref) uint32 {
	return (*arrayHeader)(FieldPointer(ref)).length
}

// ArrayWidth returns the element width written at construction.
func ArrayWidth(ref Ref) uint64 {
	return (*arrayHeader)(FieldPointer(ref)).width
}

// ArrayElementPointer returns the address of element 0. No bounds are
// checked here or in any other array accessor; the compiler inserts
// its own checks ahead of the call.
func ArrayElementPointer(ref Ref) unsafe.Pointer {
	return unsafe.Add(FieldPointer(ref), arrayHeaderSize)
}

// ArrayCopy copies length elements from src starting at srcPos into
// dst starting at dstPos. The two arrays must have equal element
// widths; a mismatch aborts the process. Overlapping ranges within a
// single array copy correctly in both directions.
func ArrayCopy(src Ref, srcPos int32, dst Ref, dstPos int32, length int32) {
	width := ArrayWidth(src)
	if width != ArrayWidth(dst) {
		fatalf("Attempt to copy between arrays of different element widths. Aborting.")
	}
	w := uintptr(width)
	n := w * uintptr(length)
	sp := unsafe.Add(ArrayElementPointer(src), w*uintptr(srcPos))
	dp := unsafe.Add(ArrayElementPointer(dst), w*uintptr(dstPos))
	copy(unsafe.Slice((*byte)(dp), n), unsafe.Slice((*byte)(sp), n))
}

// ArrayRefAt reads element i of a reference array.
func ArrayRefAt(ref Ref, i uint32) Ref {
	return *(*Ref)(unsafe.Add(ArrayElementPointer(ref), uintptr(i)*unsafe.Sizeof(Ref{})))
}

// SetArrayRefAt writes element i of a reference array.
func SetArrayRefAt(ref Ref, i uint32, v Ref) {
	*(*Ref)(unsafe.Add(ArrayElementPointer(ref), uintptr(i)*unsafe.Sizeof(Ref{}))) = v
}
