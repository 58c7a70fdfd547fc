package diag

import (
	"go/token"
)

// Note attaches secondary context to a diagnostic.
type Note struct {
	Pos token.Position
	Msg string
}

// Diagnostic is one finding reported by a pipeline stage. Primary points
// at the offending source location; token.Position carries the byte
// offset alongside line and column, so consumers can attribute the
// finding either way.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  token.Position
	Notes    []Note
}
