package jrt

import (
	"sync"
	"unsafe"
)

// ---------------------------------------------------------------------------
// Heap: pinned allocation blocks
// ---------------------------------------------------------------------------

// Every allocation is recorded in a process-wide registry so that the
// storage stays valid for as long as compiled code can still reach it.
// There is no deallocation primitive; nothing is ever removed from the
// registry. Exhaustion aborts inside the underlying allocator rather
// than surfacing as a recoverable error.

var heapBlocks [][]uint64
var heapBlocksMu sync.Mutex

// allocBlock reserves size bytes of 8-byte-aligned storage and pins it.
// Contents beyond the zero fill of a fresh block carry no guarantee.
func allocBlock(size uintptr) unsafe.Pointer {
	words := (size + 7) / 8
	if words == 0 {
		words = 1
	}
	block := make([]uint64, words)

	heapBlocksMu.Lock()
	heapBlocks = append(heapBlocks, block)
	heapBlocksMu.Unlock()

	return unsafe.Pointer(&block[0])
}
