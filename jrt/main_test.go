package jrt

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// The commonlog/simple backend (imported in diag.go) starts a permanent
	// buffered-writer goroutine at init time; it is not a test leak.
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("github.com/tliron/kutil/util.(*BufferedWriter).run"))
}
