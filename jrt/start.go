package jrt

import (
	"github.com/srijs/rustretto/config"
)

// Start is the program entry point called from the process's main. It
// applies runtime.toml options when one is present, names the calling
// thread "main", boxes every command-line argument after the program
// name into a reference array of runtime strings, and invokes the
// compiled entry function. It returns a success status once that call
// returns; an exception the entry function does not catch terminates
// the process like any other unhandled throw.
func Start(argv []string, entry func(args Ref)) uint32 {
	defer Guard()

	applyRuntimeConfig()
	SetCurrentThreadName("main")

	var args Ref
	if len(argv) > 0 {
		args = NewArray(uint32(len(argv)-1), RefWidth)
		for i, arg := range argv[1:] {
			SetArrayRefAt(args, uint32(i), NewString(arg))
		}
	} else {
		args = NewArray(0, RefWidth)
	}

	entry(args)

	return 0
}

func applyRuntimeConfig() {
	cfg, err := config.FindAndLoad(".")
	if err != nil {
		log.Errorf("runtime configuration: %s", err.Error())
		return
	}
	if cfg == nil {
		return
	}
	Configure(Options{
		BacktraceDepth: cfg.Diagnostics.BacktraceDepth,
		ThreadNameMax:  cfg.Diagnostics.ThreadNameMax,
	})
	log.Infof("applied runtime options from %s", cfg.Path)
}
