package jrt

// Options tune the runtime's diagnostic output. They mirror the knobs
// in runtime.toml; see the config package.
type Options struct {
	// BacktraceDepth caps the number of frames captured when an
	// exception is raised.
	BacktraceDepth int

	// ThreadNameMax caps the length of names accepted by
	// SetCurrentThreadName.
	ThreadNameMax int
}

// DefaultOptions returns the built-in defaults.
func DefaultOptions() Options {
	return Options{
		BacktraceDepth: 64,
		ThreadNameMax:  32,
	}
}

var options = DefaultOptions()

// Configure installs runtime options. Call it once, before any thread
// starts; the options are read-only afterwards. Non-positive fields
// fall back to their defaults.
func Configure(opts Options) {
	def := DefaultOptions()
	if opts.BacktraceDepth <= 0 {
		opts.BacktraceDepth = def.BacktraceDepth
	}
	if opts.ThreadNameMax <= 0 {
		opts.ThreadNameMax = def.ThreadNameMax
	}
	options = opts
}
