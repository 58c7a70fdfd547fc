package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
)

// StdinPath selects standard input instead of a file on disk.
const StdinPath = "-"

// DefaultMaxDiagnostics bounds the diagnostic bag when neither the
// configuration nor the manifest asks for a different limit.
const DefaultMaxDiagnostics = 100

// Defaults supplies fallback values for unset Config fields, typically
// loaded from a conduct.toml manifest (see internal/project).
type Defaults struct {
	GoVersion      string
	MaxDiagnostics int
}

// Config carries the caller-provided knobs Resolve turns into an Input.
// The zero value of every optional field means "use the default".
type Config struct {
	// Path of the source file, or StdinPath for standard input. Required.
	Path string
	// GoVersion is the language dialect override ("go1.24" style).
	GoVersion string
	// Quiet suppresses non-essential output in downstream consumers.
	Quiet bool
	// MaxDiagnostics bounds the diagnostic bag; 0 means the default.
	MaxDiagnostics int
	// Defaults fill unset fields; an explicit value always wins.
	Defaults *Defaults
	// Stdin overrides the reader used for StdinPath. Nil means os.Stdin.
	Stdin io.Reader
}

// goVersionRx matches the dialect strings the host type-checker accepts.
var goVersionRx = regexp.MustCompile(`^go[1-9][0-9]*(\.(0|[1-9][0-9]*)){0,2}$`)

// ValidGoVersion reports whether v names a language version the host
// understands. The empty string selects the toolchain default.
func ValidGoVersion(v string) bool {
	return v == "" || goVersionRx.MatchString(v)
}

// merge applies defaults and validates the dialect and limits. It
// returns the effective language version and diagnostic bound.
func (cfg Config) merge() (goVersion string, maxDiagnostics int, err error) {
	goVersion = cfg.GoVersion
	maxDiagnostics = cfg.MaxDiagnostics
	if d := cfg.Defaults; d != nil {
		if goVersion == "" {
			goVersion = d.GoVersion
		}
		if maxDiagnostics == 0 {
			maxDiagnostics = d.MaxDiagnostics
		}
	}
	if !ValidGoVersion(goVersion) {
		return "", 0, &ResolutionError{
			Kind: InvalidConfiguration,
			Path: cfg.Path,
			Err:  fmt.Errorf("unknown language version %q", goVersion),
		}
	}
	if maxDiagnostics < 0 {
		return "", 0, &ResolutionError{
			Kind: InvalidConfiguration,
			Path: cfg.Path,
			Err:  fmt.Errorf("negative diagnostic limit %d", maxDiagnostics),
		}
	}
	if maxDiagnostics == 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	return goVersion, maxDiagnostics, nil
}

// Resolve validates cfg, reads the source bytes once, and returns the
// immutable Input the session bootstrapper consumes. It fails fast with
// *ResolutionError before any host state is touched. The only side
// effect is the initial source read.
func Resolve(cfg Config) (Input, error) {
	if cfg.Path == "" {
		return Input{}, &ResolutionError{
			Kind: InvalidConfiguration,
			Path: cfg.Path,
			Err:  errors.New("missing input path"),
		}
	}
	goVersion, maxDiagnostics, err := cfg.merge()
	if err != nil {
		return Input{}, err
	}

	if cfg.Path == StdinPath {
		r := cfg.Stdin
		if r == nil {
			r = os.Stdin
		}
		content, readErr := io.ReadAll(r)
		if readErr != nil {
			return Input{}, &ResolutionError{Kind: NotReadable, Path: "<stdin>", Err: readErr}
		}
		return Input{
			path:           "<stdin>",
			content:        content,
			goVersion:      goVersion,
			quiet:          cfg.Quiet,
			maxDiagnostics: maxDiagnostics,
			virtual:        true,
		}, nil
	}

	st, statErr := os.Stat(cfg.Path)
	if statErr != nil {
		kind := NotReadable
		if errors.Is(statErr, fs.ErrNotExist) {
			kind = NotFound
		}
		return Input{}, &ResolutionError{Kind: kind, Path: cfg.Path, Err: statErr}
	}
	if st.IsDir() {
		return Input{}, &ResolutionError{
			Kind: NotReadable,
			Path: cfg.Path,
			Err:  errors.New("is a directory"),
		}
	}

	// #nosec G304 -- path is provided by the caller
	content, readErr := os.ReadFile(cfg.Path)
	if readErr != nil {
		return Input{}, &ResolutionError{Kind: NotReadable, Path: cfg.Path, Err: readErr}
	}

	return Input{
		path:           cfg.Path,
		content:        content,
		goVersion:      goVersion,
		quiet:          cfg.Quiet,
		maxDiagnostics: maxDiagnostics,
	}, nil
}

// ResolveVirtual builds an Input from in-memory bytes (tests, generated
// sources). The name is used for positions only; no filesystem access
// happens.
func ResolveVirtual(name string, content []byte, cfg Config) (Input, error) {
	if name == "" {
		return Input{}, &ResolutionError{
			Kind: InvalidConfiguration,
			Path: name,
			Err:  errors.New("missing virtual input name"),
		}
	}
	cfg.Path = name
	goVersion, maxDiagnostics, err := cfg.merge()
	if err != nil {
		return Input{}, err
	}
	return Input{
		path:           name,
		content:        content,
		goVersion:      goVersion,
		quiet:          cfg.Quiet,
		maxDiagnostics: maxDiagnostics,
		virtual:        true,
	}, nil
}
