package driver

import (
	"fmt"

	"conduct/internal/diag"
)

// Stage is one of the three ordered pipeline stages.
type Stage uint8

const (
	// StageLexing converts source bytes into syntax tokens.
	StageLexing Stage = iota
	// StageParsing builds the un-expanded syntax tree.
	StageParsing
	// StageResolution type-checks and name-resolves the tree.
	StageResolution

	stageDone
)

func (s Stage) String() string {
	switch s {
	case StageLexing:
		return "lexing"
	case StageParsing:
		return "parsing"
	case StageResolution:
		return "resolution"
	}
	return "unknown"
}

// OrderError reports a stage method called out of order: a programming
// error in the calling tool, not a property of the input. The host is
// never entered when it is returned.
type OrderError struct {
	Called Stage
	Next   Stage
}

func (e *OrderError) Error() string {
	if e.Called < e.Next {
		return fmt.Sprintf("stage order violation: %s already completed", e.Called)
	}
	return fmt.Sprintf("stage order violation: %s requested but %s has not succeeded yet", e.Called, e.Next)
}

// StageError reports that the host pipeline rejected the analyzed
// source at the given stage. This is the normal failure mode for bad
// input: recoverable, with structured diagnostics attached. The stage's
// callback was not invoked.
type StageError struct {
	Stage       Stage
	Diagnostics []diag.Diagnostic
}

func (e *StageError) Error() string {
	n := len(e.Diagnostics)
	if n == 0 {
		return fmt.Sprintf("%s failed", e.Stage)
	}
	return fmt.Sprintf("%s failed with %d diagnostic(s): %s", e.Stage, n, e.Diagnostics[0].Message)
}
