package source

import "fmt"

// ResolutionErrorKind classifies why an input could not be resolved.
type ResolutionErrorKind uint8

const (
	// NotFound means the path does not exist.
	NotFound ResolutionErrorKind = iota
	// NotReadable means the path exists but its content cannot be read
	// (permissions, directory, transient IO failure).
	NotReadable
	// InvalidConfiguration means the requested options are malformed or
	// contradictory (e.g. a dialect string the host does not know).
	InvalidConfiguration
)

func (k ResolutionErrorKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case NotReadable:
		return "not readable"
	case InvalidConfiguration:
		return "invalid configuration"
	}
	return "unknown"
}

// ResolutionError is returned by Resolve before any host state has been
// touched; it is always safe to retry with a corrected configuration.
type ResolutionError struct {
	Kind ResolutionErrorKind
	Path string
	Err  error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resolve %s: %s: %v", e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("resolve %s: %s", e.Path, e.Kind)
}

func (e *ResolutionError) Unwrap() error { return e.Err }
