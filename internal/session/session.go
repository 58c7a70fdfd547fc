package session

import (
	"errors"
	"go/token"
	"runtime/debug"
	"sync"

	"conduct/internal/diag"
	"conduct/internal/source"
)

// ErrClosed is returned when a stage is driven on a closed session.
var ErrClosed = errors.New("session is closed")

// Exactly one session may be live per process: the host position table
// and the representations allocated into it behave like the host's
// global interner, and concurrent sessions are unsupported (see doc.go).
var (
	liveMu sync.Mutex
	live   bool
)

// Session owns every piece of state the driven pipeline allocates into:
// the host position table (token.FileSet), the registered input file and
// the diagnostic bag all stages report to. All stage outputs borrow from
// the session and become unusable once it is closed.
type Session struct {
	input source.Input
	fset  *token.FileSet
	file  *token.File
	bag   *diag.Bag

	// Sink counters. The bag is capacity-bounded and may refuse an
	// entry; these keep counting anyway, so stage outcome never
	// depends on how full the bag is.
	reports      int
	errorReports int

	mu     sync.Mutex
	closed bool
}

// Bootstrap constructs the one live session for this process from a
// resolved input. A second call while a session is live fails with
// BootstrapError kind AlreadyInitialized, deterministically; sequential
// sessions (bootstrap, close, bootstrap) are fine.
func Bootstrap(in source.Input) (*Session, error) {
	liveMu.Lock()
	if live {
		liveMu.Unlock()
		return nil, &BootstrapError{
			Kind: AlreadyInitialized,
			Err:  errors.New("another session is live in this process"),
		}
	}
	live = true
	liveMu.Unlock()

	sess := &Session{
		input: in,
		bag:   diag.NewBag(in.MaxDiagnostics()),
	}
	err := sess.Enter("bootstrap", func() error {
		sess.fset = token.NewFileSet()
		sess.file = sess.fset.AddFile(in.Path(), -1, len(in.Content()))
		return nil
	})
	if err != nil {
		sess.release()
		var hostPanic *HostPanicError
		if errors.As(err, &hostPanic) {
			return nil, &BootstrapError{Kind: InvalidSession, Err: hostPanic}
		}
		return nil, &BootstrapError{Kind: InvalidSession, Err: err}
	}
	return sess, nil
}

// Input returns the resolved input this session was built from.
func (s *Session) Input() source.Input { return s.input }

// FileSet returns the host position table. It stays valid until Close.
func (s *Session) FileSet() *token.FileSet { return s.fset }

// File returns the token.File registered for the input.
func (s *Session) File() *token.File { return s.file }

// Bag returns the diagnostic sink all stages report into.
func (s *Session) Bag() *diag.Bag { return s.bag }

// ReportCount returns how many diagnostics the sinks received, counting
// entries the bag refused at capacity.
func (s *Session) ReportCount() int { return s.reports }

// ErrorCount returns how many error-severity diagnostics the sinks
// received, counting entries the bag refused at capacity.
func (s *Session) ErrorCount() int { return s.errorReports }

// record funnels every sink report through one place: counters first,
// then the bounded bag, which may drop the entry.
func (s *Session) record(d diag.Diagnostic) {
	s.reports++
	if d.Severity >= diag.SevError {
		s.errorReports++
	}
	s.bag.Add(d)
}

// Enter runs fn inside the host-panic barrier. A panic raised by host
// internals is recovered here and converted to *HostPanicError; it never
// unwinds past the session boundary. Stage names the host entry point
// for the error report.
func (s *Session) Enter(stage string, fn func() error) (err error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return ErrClosed
	}
	defer func() {
		if r := recover(); r != nil {
			err = &HostPanicError{
				Stage: stage,
				Value: r,
				Stack: debug.Stack(),
			}
		}
	}()
	return fn()
}

// Close tears the session down and releases the process-wide guard so a
// later Bootstrap may succeed. All views borrowed from this session are
// invalid afterwards. Close is idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()
	s.release()
}

func (s *Session) release() {
	liveMu.Lock()
	live = false
	liveMu.Unlock()
}
