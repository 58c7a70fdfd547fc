// Package diag defines the diagnostic model shared by all driven pipeline
// stages.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings the host compiler reports while the driver advances it
//     through the lexical / syntactic / semantic stages.
//   - Offer light-weight utilities (Reporter, Bag) that let the session's
//     sink adapters record diagnostics without coupling to concrete
//     storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting, IO, or CLI integration.
// Rendering responsibilities live in internal/diagfmt; the conversion of
// host error values (go/scanner handlers, go/types error hooks, parser
// error lists) into Diagnostics lives with the session's sink wiring.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text, taken verbatim from the host.
//   - Primary position – a go/token.Position; it carries the byte offset as
//     well as file/line/column, so findings stay attributable either way.
//   - Notes – optional secondary positions/messages for additional context.
//
// Keep the data model deterministic: Bag supports bounded accumulation,
// stable sorting and deduplication so that repeated runs over the same
// input produce identical output.
package diag
