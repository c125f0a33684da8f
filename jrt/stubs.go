package jrt

import (
	"fmt"
	"io"
	"os"
)

// ---------------------------------------------------------------------------
// System.out and library method stubs
// ---------------------------------------------------------------------------

// printlnStringSlot is the compiled vtable slot of
// java.io.PrintStream.println(String).
const printlnStringSlot = 43

var stdout io.Writer = os.Stdout

// SystemOut is java.lang.System.out: a print stream with no object
// state whose vtable carries println at its compiled slot.
var SystemOut = Ref{vtable: newPrintStreamVTable()}

func newPrintStreamVTable() *VTable {
	vt := NewVTable(nil, printlnStringSlot+1)
	vt.SetMethod(printlnStringSlot, PrintStreamPrintln)
	return vt
}

// PrintStreamPrintln writes the boxed string and a newline to the
// stream's output.
func PrintStreamPrintln(this Ref, s Ref) {
	fmt.Fprintln(stdout, GoString(s))
}

// The stubs below cover library methods with no native implementation
// yet. Invoking one names the missing method and aborts; they are not
// a supported error path.

func StringBuilderInit(this Ref) {
	TrapUnimplemented("java.lang.StringBuilder.<init>")
}

func IllegalArgumentExceptionInit(this Ref, message Ref) {
	TrapUnimplemented("java.lang.IllegalArgumentException.<init>")
}

func IntegerToHexString(value int64) Ref {
	TrapUnimplemented("java.lang.Integer.toHexString")
	return Null
}
