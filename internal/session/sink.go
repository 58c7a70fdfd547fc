package session

import (
	"errors"
	"go/scanner"
	"go/token"
	"go/types"

	"conduct/internal/diag"
)

// Sink adapters: the bootstrapper wires the host's error callbacks to
// the session bag, so failures in the analyzed source surface as
// structured diagnostics instead of terminating the process.

// ScannerSink returns a go/scanner error handler that records lexical
// findings into the session bag.
func (s *Session) ScannerSink() scanner.ErrorHandler {
	return func(pos token.Position, msg string) {
		s.record(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.LexInvalidToken,
			Message:  msg,
			Primary:  pos,
		})
	}
}

// RecordParseErrors converts the error value returned by the host parser
// (a scanner.ErrorList, possibly wrapped) into bag entries. It reports
// how many diagnostics were recorded.
func (s *Session) RecordParseErrors(err error) int {
	if err == nil {
		return 0
	}
	var list scanner.ErrorList
	if errors.As(err, &list) {
		for _, e := range list {
			s.record(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.SynParseError,
				Message:  e.Msg,
				Primary:  e.Pos,
			})
		}
		return len(list)
	}
	s.record(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynParseError,
		Message:  err.Error(),
	})
	return 1
}

// RecordCheckError records a type-check failure that bypassed the
// types.Config.Error hook (e.g. a malformed configuration).
func (s *Session) RecordCheckError(err error) {
	s.record(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SemaTypeError,
		Message:  err.Error(),
	})
}

// TypeErrorSink returns the hook for types.Config.Error. Soft errors
// (the host keeps checking past them) are recorded as warnings, hard
// errors as errors.
func (s *Session) TypeErrorSink() func(error) {
	return func(err error) {
		var terr types.Error
		if !errors.As(err, &terr) {
			s.record(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.SemaTypeError,
				Message:  err.Error(),
			})
			return
		}
		sev := diag.SevError
		code := diag.SemaTypeError
		if terr.Soft {
			sev = diag.SevWarning
			code = diag.SemaSoftError
		}
		s.record(diag.Diagnostic{
			Severity: sev,
			Code:     code,
			Message:  terr.Msg,
			Primary:  terr.Fset.Position(terr.Pos),
		})
	}
}
