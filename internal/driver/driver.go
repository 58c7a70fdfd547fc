package driver

import (
	"go/ast"

	"conduct/internal/diag"
	"conduct/internal/observ"
	"conduct/internal/session"
)

// Options configures a Driver.
type Options struct {
	// Timer, when set, records per-stage timings.
	Timer *observ.Timer
}

// Driver advances the session through the pipeline stages in fixed
// order: lexing, then parsing, then resolution. Each transition is
// irreversible and requires the previous stage to have succeeded; the
// caller chooses how far to drive and stops at whichever representation
// satisfies its needs.
//
// Driver is single-threaded and synchronous. The only suspension point
// is the caller-supplied inspector executing inline within a stage call.
type Driver struct {
	sess  *session.Session
	timer *observ.Timer

	next Stage
	file *ast.File // retained between the parse and resolution stages
}

// New creates a Driver over a bootstrapped session.
func New(sess *session.Session, opts Options) *Driver {
	return &Driver{
		sess:  sess,
		timer: opts.Timer,
		next:  StageLexing,
	}
}

// Diagnostics returns every diagnostic recorded so far, across all
// stages driven on this session (warnings from succeeded stages
// included).
func (d *Driver) Diagnostics() []diag.Diagnostic {
	return d.sess.Bag().Items()
}

// require checks the stage order invariant before the host is entered.
func (d *Driver) require(s Stage) error {
	if d.next != s {
		return &OrderError{Called: s, Next: d.next}
	}
	return nil
}

// stop begins timing a stage when a timer is configured.
func (d *Driver) stop(name string) func(string) {
	if d.timer == nil {
		return func(string) {}
	}
	return d.timer.Start(name)
}

// stageMark snapshots the sink counters and the bag length before a
// stage enters the host. Outcome checks compare against the counters,
// not the bag: the bag is capacity-bounded and may have dropped the
// very entry that should fail the stage.
type stageMark struct {
	bagLen  int
	reports int
	errors  int
}

func (d *Driver) mark() stageMark {
	return stageMark{
		bagLen:  d.sess.Bag().Len(),
		reports: d.sess.ReportCount(),
		errors:  d.sess.ErrorCount(),
	}
}

// failed collects the diagnostics a stage appended past the mark into a
// StageError. The stage is not advanced. Entries the bag dropped at
// capacity are counted in the failure decision but cannot be replayed
// here.
func (d *Driver) failed(s Stage, m stageMark) error {
	return &StageError{
		Stage:       s,
		Diagnostics: append([]diag.Diagnostic(nil), d.sess.Bag().Since(m.bagLen)...),
	}
}

// stageErrors reports whether the sinks received error-severity
// diagnostics past the mark.
func (d *Driver) stageErrors(m stageMark) bool {
	return d.sess.ErrorCount() > m.errors
}

// reported reports whether the sinks received anything at all past the
// mark, regardless of severity.
func (d *Driver) reported(m stageMark) bool {
	return d.sess.ReportCount() > m.reports
}
