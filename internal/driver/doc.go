// Package driver is the orchestration state machine that advances a
// bootstrapped session through the host compiler's front-end stages:
//
//	lexing → parsing → resolution
//
// Each transition is irreversible and requires the previous stage to
// have succeeded; requesting a stage out of order is a contract
// violation reported as *OrderError before the host is entered.
//
// Each stage method invokes its inspector synchronously, exactly once,
// with a borrowed view scoped to that call; the view is invalidated
// when the inspector returns, and nothing observed through it may be
// retained. Host-reported failures for the analyzed source surface as
// *StageError with structured diagnostics (the inspector is not
// invoked); panics inside host internals surface as
// *session.HostPanicError via the session barrier.
//
// The driver never advances past the requested stage: an attribute-only
// tool can stop after RunParser and skip type-checking entirely.
package driver
