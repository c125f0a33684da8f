package jrt

import (
	"fmt"
	"io"
	"os"
	"runtime"
)

// ---------------------------------------------------------------------------
// Exception propagation
// ---------------------------------------------------------------------------

// exceptionClass tags control blocks raised by this runtime ("JAVA"),
// so unwinding never confuses them with foreign panics.
const exceptionClass uint64 = 0x4A415641

// Thrown is the exception control block handed to the unwinder. It
// carries the thrown reference as an opaque payload and the backtrace
// captured at the raise site; both survive unwinding until a handler
// frame claims them or the stack is exhausted.
type Thrown struct {
	throwable Ref
	class     uint64
	pcs       []uintptr
}

// Throwable returns the thrown object reference.
func (t *Thrown) Throwable() Ref {
	return t.throwable
}

// Throw raises an exception: it wraps the throwable in a control
// block, captures the raising thread's backtrace, and hands the block
// to the unwinder. It never returns normally; control transfers to a
// matching handler frame, or the process terminates if none exists.
func Throw(throwable Ref) {
	pcs := make([]uintptr, options.BacktraceDepth)
	n := runtime.Callers(2, pcs)
	panic(&Thrown{
		throwable: throwable,
		class:     exceptionClass,
		pcs:       pcs[:n],
	})
}

// Caught claims a recovered value for a handler frame. It returns the
// thrown reference and true when the value is one of this runtime's
// control blocks; foreign panics are never claimed and must be passed
// back to Rethrow.
func Caught(recovered any) (Ref, bool) {
	t, ok := recovered.(*Thrown)
	if !ok || t.class != exceptionClass {
		return Null, false
	}
	return t.throwable, true
}

// Rethrow resumes unwinding with a value the frame did not handle.
func Rethrow(recovered any) {
	panic(recovered)
}

// Guard terminates propagation at the top of a thread. Deferred by
// Start (and by compiled thread wrappers), it reports an exception
// that reached the end of the stack and exits with a failure status.
// Foreign panics continue unwinding untouched.
func Guard() {
	r := recover()
	if r == nil {
		return
	}
	t, ok := r.(*Thrown)
	if !ok || t.class != exceptionClass {
		panic(r)
	}
	t.report(os.Stderr)
	os.Exit(1)
}

// report prints the raising thread's name and the captured backtrace,
// one frame per line.
func (t *Thrown) report(w io.Writer) {
	if name, ok := CurrentThreadName(); ok {
		fmt.Fprintf(w, "Exception in thread \"%s\"\n", name)
	} else {
		fmt.Fprintln(w, "Exception in unknown thread")
	}
	frames := runtime.CallersFrames(t.pcs)
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			fmt.Fprintf(w, "\tat %s (%s:%d)\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
}

// ---------------------------------------------------------------------------
// Fatal traps
// ---------------------------------------------------------------------------

// TrapAbstractMethod is called by compiled code when dispatch resolves
// to an abstract or uncompiled slot. This is a compiler or linkage
// defect, not a program-level condition: it prints a diagnostic and
// aborts immediately, bypassing unwinding.
func TrapAbstractMethod(symbol string) {
	fatalf("Invoked abstract method %s. Aborting.", symbol)
}

// TrapUnimplemented aborts with a diagnostic naming a library method
// whose native implementation is missing.
func TrapUnimplemented(symbol string) {
	fatalf("Invoked unimplemented method %s. Aborting.", symbol)
}
