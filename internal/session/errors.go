package session

import "fmt"

// BootstrapErrorKind classifies why a session could not be constructed.
type BootstrapErrorKind uint8

const (
	// AlreadyInitialized means another live session owns the process-wide
	// host state. Close it (or restart the process) before bootstrapping
	// again.
	AlreadyInitialized BootstrapErrorKind = iota
	// InvalidSession means the host rejected the session configuration.
	InvalidSession
)

func (k BootstrapErrorKind) String() string {
	switch k {
	case AlreadyInitialized:
		return "already initialized"
	case InvalidSession:
		return "invalid session"
	}
	return "unknown"
}

// BootstrapError is returned by Bootstrap when session construction
// fails. It is recoverable: close the offending session or fix the
// configuration and bootstrap again.
type BootstrapError struct {
	Kind BootstrapErrorKind
	Err  error
}

func (e *BootstrapError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bootstrap: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("bootstrap: %s", e.Kind)
}

func (e *BootstrapError) Unwrap() error { return e.Err }

// HostPanicError reports a panic raised inside host compiler internals.
// The barrier in Session.Enter recovers it at the session boundary so it
// can never unwind through caller code and corrupt the process-wide host
// state. It signals a host-internal inconsistency, not bad input.
type HostPanicError struct {
	Stage string
	Value any
	Stack []byte
}

func (e *HostPanicError) Error() string {
	return fmt.Sprintf("host compiler panicked during %s: %v", e.Stage, e.Value)
}
