package diagfmt

import (
	"fmt"
	"sort"
	"strings"

	"conduct/internal/diag"
)

// Short renders diagnostics into a stable, single-line-per-entry
// representation suitable for golden files and terse CLI output.
// Entries are sorted deterministically and returned as one string
// (empty when there are none).
func Short(diags []diag.Diagnostic, includeNotes bool) string {
	sorted := append([]diag.Diagnostic(nil), diags...)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i], sorted[j]
		if di.Primary.Filename != dj.Primary.Filename {
			return di.Primary.Filename < dj.Primary.Filename
		}
		if di.Primary.Offset != dj.Primary.Offset {
			return di.Primary.Offset < dj.Primary.Offset
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for i, d := range sorted {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s",
			d.Severity, d.Code,
			d.Primary.Filename, d.Primary.Line, d.Primary.Column,
			d.Message)
		if includeNotes {
			for _, note := range d.Notes {
				fmt.Fprintf(&b, "\n  note %s:%d:%d %s",
					note.Pos.Filename, note.Pos.Line, note.Pos.Column, note.Msg)
			}
		}
		if i < len(sorted)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
