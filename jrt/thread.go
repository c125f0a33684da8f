package jrt

import (
	"sync"

	"github.com/petermattis/goid"
)

// ---------------------------------------------------------------------------
// Thread identity
// ---------------------------------------------------------------------------

// Thread names feed the unhandled-exception diagnostic and nothing
// else; a missing name degrades that message only.

var threadNames sync.Map // goroutine id → string

// SetCurrentThreadName names the calling thread for diagnostic output.
// Names longer than the configured maximum are truncated.
func SetCurrentThreadName(name string) {
	if max := options.ThreadNameMax; len(name) > max {
		name = name[:max]
	}
	threadNames.Store(goid.Get(), name)
}

// CurrentThreadName returns the calling thread's name, if one was set.
func CurrentThreadName() (string, bool) {
	v, ok := threadNames.Load(goid.Get())
	if !ok {
		return "", false
	}
	return v.(string), true
}
