package source

// Input is the immutable description of what to analyze: the display
// path, the source bytes (read exactly once, at resolution time), the
// language dialect and the output-suppression preference.
//
// Inputs are created by Resolve or ResolveVirtual and read-only
// afterwards. All downstream stages observe the same bytes; nothing in
// the pipeline re-reads the file.
type Input struct {
	path           string
	content        []byte
	goVersion      string
	quiet          bool
	maxDiagnostics int
	virtual        bool
}

// Path returns the display path of the input ("<stdin>" for standard
// input, the given name for virtual inputs).
func (in Input) Path() string { return in.path }

// Content returns the source bytes.
// ВАЖНО: не модифицируйте возвращаемый срез! (он разделяется всеми стадиями)
func (in Input) Content() []byte { return in.content }

// GoVersion returns the language dialect ("go1.24" style), or the empty
// string for the toolchain default.
func (in Input) GoVersion() string { return in.goVersion }

// Quiet reports whether non-essential output should be suppressed.
func (in Input) Quiet() bool { return in.quiet }

// MaxDiagnostics returns the diagnostic bound for the driven run.
func (in Input) MaxDiagnostics() int { return in.maxDiagnostics }

// Virtual reports whether the input came from memory or stdin rather
// than a file on disk.
func (in Input) Virtual() bool { return in.virtual }
