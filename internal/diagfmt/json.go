package diagfmt

import (
	"encoding/json"
	"io"

	"conduct/internal/diag"
)

// DiagnosticOutput is the stable JSON shape of one diagnostic.
type DiagnosticOutput struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Path     string       `json:"path"`
	Line     int          `json:"line"`
	Column   int          `json:"column"`
	Offset   int          `json:"offset"`
	Message  string       `json:"message"`
	Notes    []NoteOutput `json:"notes,omitempty"`
}

// NoteOutput is the JSON shape of a diagnostic note.
type NoteOutput struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

// BuildJSON converts diagnostics into their serialisable form.
func BuildJSON(diags []diag.Diagnostic) []DiagnosticOutput {
	out := make([]DiagnosticOutput, 0, len(diags))
	for _, d := range diags {
		entry := DiagnosticOutput{
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			Path:     d.Primary.Filename,
			Line:     d.Primary.Line,
			Column:   d.Primary.Column,
			Offset:   d.Primary.Offset,
			Message:  d.Message,
		}
		for _, note := range d.Notes {
			entry.Notes = append(entry.Notes, NoteOutput{
				Path:    note.Pos.Filename,
				Line:    note.Pos.Line,
				Column:  note.Pos.Column,
				Message: note.Msg,
			})
		}
		out = append(out, entry)
	}
	return out
}

// JSON writes diagnostics as indented JSON.
func JSON(w io.Writer, diags []diag.Diagnostic) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildJSON(diags))
}
