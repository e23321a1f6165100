package domain

// RunOptions configures one build run. The zero value executes recipes
// for real, prints output as it happens and uses an unbounded worker pool.
type RunOptions struct {
	// DryRun prints the commands and function calls that would run
	// without executing anything.
	DryRun bool
	// OutputSync buffers each rule's output and flushes it atomically
	// after the whole recipe finishes, so parallel rules do not
	// interleave line by line.
	OutputSync bool
	// Workers bounds the number of concurrently running parallel rules.
	// Zero or negative means unbounded.
	Workers int
}
