package jrt

import (
	"unsafe"
)

// ---------------------------------------------------------------------------
// Boxed strings
// ---------------------------------------------------------------------------

// Strings are NUL-terminated byte buffers carried behind the nil-vtable
// escape hatch: the data pointer addresses the bytes directly and no
// dispatch table is attached.

// NewString boxes a Go string as a runtime string reference.
func NewString(s string) Ref {
	p := allocBlock(uintptr(len(s)) + 1)
	buf := unsafe.Slice((*byte)(p), len(s)+1)
	copy(buf, s)
	buf[len(s)] = 0
	return Ref{object: p}
}

// GoString decodes a runtime string reference back into a Go string.
func GoString(ref Ref) string {
	if ref.object == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(ref.object, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(ref.object), n))
}
