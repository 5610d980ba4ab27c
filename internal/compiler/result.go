package compiler

// Tag is a source location a compiler attached to an output line.
type Tag struct {
	Line  int
	Label string
}

// StreamLine is one line of compiler or program stdout/stderr.
type StreamLine struct {
	Text string
	Tag  *Tag
}

// SourceRef maps an assembly line back to the source. File is empty when the
// line belongs to the main source file.
type SourceRef struct {
	File string
	Line int
}

type AsmLine struct {
	Text   string
	Source *SourceRef
}

// ExecutionResult is the outcome of running the compiled program.
type ExecutionResult struct {
	ExitCode int
	Stdout   []StreamLine
	Stderr   []StreamLine
}

// Result is the outcome of one compile round trip. It is never modified after
// the client returns it.
type Result struct {
	ExitCode  int
	Stdout    []StreamLine
	Stderr    []StreamLine
	Assembly  []AsmLine
	Execution *ExecutionResult
}
