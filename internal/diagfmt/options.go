// Package diagfmt renders diagnostics and stage representations for the
// CLI: pretty (human, colored, with source context), json (stable,
// machine readable) and short (one line per finding, golden-friendly).
package diagfmt

// PrettyOpts configures human-readable diagnostic output.
type PrettyOpts struct {
	// Color enables ANSI colors.
	Color bool
	// Context is the number of source lines printed around the primary
	// line. 0 prints just the primary line with its caret.
	Context int
}
