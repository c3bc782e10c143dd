package intersect

import (
	"io"
	"runtime"
)

// Options are the options for Search.
type Options struct {
	// Parallel is the maximum number of range nodes searched concurrently, values below two search sequentially.
	Parallel int

	// ParallelCutoff is the minimum number of segments in a child range node to search it concurrently.
	ParallelCutoff int

	// Check verifies that every segment of a range node reaches its range, and that no pair is reported twice. A failed check returns ErrInvariantViolation.
	Check bool

	// Trace writes one line for every visited range node.
	Trace io.Writer
}

// DefaultOptions are the default options.
var DefaultOptions = Options{
	Parallel:       runtime.GOMAXPROCS(0),
	ParallelCutoff: 64,
	Check:          false,
	Trace:          nil,
}
