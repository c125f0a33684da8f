package jrt

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("jrt")

// fatalf reports a broken runtime invariant on the diagnostic stream
// and aborts the process. These conditions are never retried and never
// converted into thrown exceptions: they mean the compiler's contract
// was violated, not that the running program hit a recoverable state.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
