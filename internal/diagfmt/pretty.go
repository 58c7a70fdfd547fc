package diagfmt

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"conduct/internal/diag"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	posColor  = color.New(color.Bold)
)

// Pretty formats diagnostics in a human-readable way, one finding per
// block:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	   3 | var s = "abc
//	     |         ^
//
// src supplies the analyzed source bytes for the context lines; pass
// nil to skip them. Callers are expected to Sort() the bag first.
func Pretty(w io.Writer, diags []diag.Diagnostic, src []byte, opts PrettyOpts) {
	lines := bytes.Split(src, []byte("\n"))
	for _, d := range diags {
		pos := posColor
		if !opts.Color {
			pos = nil
		}
		loc := fmt.Sprintf("%s:%d:%d", d.Primary.Filename, d.Primary.Line, d.Primary.Column)
		if pos != nil {
			loc = pos.Sprint(loc)
		}
		fmt.Fprintf(w, "%s: %s %s: %s\n", loc, severityLabel(d.Severity, opts.Color), d.Code, d.Message)

		writeContext(w, lines, d.Primary.Line, d.Primary.Column, opts)

		for _, note := range d.Notes {
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", note.Pos.Filename, note.Pos.Line, note.Pos.Column, note.Msg)
		}
	}
}

// writeContext prints the source lines around the primary line and a
// caret under the offending column. Wide runes (CJK, emoji) before the
// caret are measured with runewidth so the caret stays aligned.
func writeContext(w io.Writer, lines [][]byte, line, col int, opts PrettyOpts) {
	if line <= 0 || line > len(lines) {
		return
	}
	first := line - opts.Context
	if first < 1 {
		first = 1
	}
	for n := first; n <= line; n++ {
		fmt.Fprintf(w, "%5d | %s\n", n, expandTabs(string(lines[n-1])))
	}
	if col <= 0 {
		return
	}
	text := lines[line-1]
	if col-1 > len(text) {
		col = len(text) + 1
	}
	pad := runewidth.StringWidth(expandTabs(string(text[:col-1])))
	fmt.Fprintf(w, "      | %*s^\n", pad, "")
}

// expandTabs keeps the caret aligned with the gutter output, where the
// terminal renders a tab as its own width. A fixed width of 8 matches
// the common default.
func expandTabs(s string) string {
	var b bytes.Buffer
	width := 0
	for _, r := range s {
		if r == '\t' {
			step := 8 - width%8
			for i := 0; i < step; i++ {
				b.WriteByte(' ')
			}
			width += step
			continue
		}
		b.WriteRune(r)
		width += runewidth.RuneWidth(r)
	}
	return b.String()
}

func severityLabel(sev diag.Severity, colored bool) string {
	if !colored {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return errColor.Sprint(sev.String())
	case diag.SevWarning:
		return warnColor.Sprint(sev.String())
	default:
		return infoColor.Sprint(sev.String())
	}
}
