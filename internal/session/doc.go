// Package session constructs and owns the compiler session the stage
// driver advances.
//
// # Lifecycle
//
// Bootstrap performs the process-wide setup the host pipeline requires:
// it allocates the position table (token.FileSet) every stage interns
// locations into, registers the input file, and wires the diagnostic
// sink. The host's position table plays the role of a global interner —
// every representation produced downstream borrows from it — so the
// package models it as explicit process-wide state with an init-once
// lifecycle:
//
//   - exactly one Session may be live per process;
//   - a second Bootstrap while one is live fails deterministically with
//     BootstrapError kind AlreadyInitialized, never nondeterministically;
//   - Close releases the guard, so sequential sessions are allowed;
//   - concurrent sessions are unsupported, full stop. The host state is
//     not proven re-entrant and this package does not pretend otherwise.
//
// # Diagnostic sink
//
// The sink adapters in sink.go buffer host findings (lexical errors,
// parse error lists, type-check errors) into a diag.Bag instead of
// letting the host print or abort. Bad input is a normal, recoverable
// outcome reported as structured diagnostics.
//
// # Panic barrier
//
// Session.Enter is the only way the driver calls into host internals.
// It recovers any panic raised there and converts it to *HostPanicError,
// because an uncaught host panic unwinding through caller code would
// leave the process-wide state corrupted for the rest of the process.
package session
