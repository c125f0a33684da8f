package jrt

import (
	"testing"
)

func TestStartBoxesArguments(t *testing.T) {
	var args Ref
	status := Start([]string{"prog", "a", "b"}, func(a Ref) {
		args = a
	})

	if status != 0 {
		t.Errorf("Start returned %d, want 0", status)
	}
	if got := ArrayLength(args); got != 2 {
		t.Fatalf("argument array length = %d, want 2", got)
	}
	if got := GoString(ArrayRefAt(args, 0)); got != "a" {
		t.Errorf("args[0] = %q, want \"a\"", got)
	}
	if got := GoString(ArrayRefAt(args, 1)); got != "b" {
		t.Errorf("args[1] = %q, want \"b\"", got)
	}
}

func TestStartEmptyArgv(t *testing.T) {
	var args Ref
	Start(nil, func(a Ref) {
		args = a
	})
	if got := ArrayLength(args); got != 0 {
		t.Errorf("argument array length = %d, want 0", got)
	}
}

func TestStartNamesMainThread(t *testing.T) {
	var name string
	var ok bool
	Start([]string{"prog"}, func(a Ref) {
		name, ok = CurrentThreadName()
	})
	if !ok || name != "main" {
		t.Errorf("entry ran as %q (%v), want \"main\"", name, ok)
	}
}
