package session

import (
	"errors"
	"go/scanner"
	"go/token"
	"testing"

	"conduct/internal/diag"
	"conduct/internal/source"
)

func testInput(t *testing.T, src string) source.Input {
	t.Helper()
	in, err := source.ResolveVirtual("main.go", []byte(src), source.Config{})
	if err != nil {
		t.Fatalf("ResolveVirtual error: %v", err)
	}
	return in
}

func TestBootstrapRegistersInput(t *testing.T) {
	in := testInput(t, "package main\n")
	sess, err := Bootstrap(in)
	if err != nil {
		t.Fatalf("Bootstrap error: %v", err)
	}
	defer sess.Close()

	if sess.FileSet() == nil || sess.File() == nil {
		t.Fatalf("session missing host state")
	}
	if sess.File().Size() != len(in.Content()) {
		t.Fatalf("registered size: got %d want %d", sess.File().Size(), len(in.Content()))
	}
	if sess.Bag() == nil || sess.Bag().Cap() == 0 {
		t.Fatalf("diagnostic bag not wired")
	}
}

func TestBootstrapTwiceFailsDeterministically(t *testing.T) {
	in := testInput(t, "package main\n")

	// Same behavior across repeated runs, never a nondeterministic
	// success.
	for run := 0; run < 3; run++ {
		first, err := Bootstrap(in)
		if err != nil {
			t.Fatalf("run %d: first Bootstrap error: %v", run, err)
		}

		_, err = Bootstrap(in)
		var berr *BootstrapError
		if !errors.As(err, &berr) {
			t.Fatalf("run %d: expected *BootstrapError, got %v", run, err)
		}
		if berr.Kind != AlreadyInitialized {
			t.Fatalf("run %d: kind: got %v want %v", run, berr.Kind, AlreadyInitialized)
		}

		first.Close()
	}
}

func TestCloseReleasesGuard(t *testing.T) {
	in := testInput(t, "package main\n")
	first, err := Bootstrap(in)
	if err != nil {
		t.Fatalf("Bootstrap error: %v", err)
	}
	first.Close()
	first.Close() // idempotent

	second, err := Bootstrap(in)
	if err != nil {
		t.Fatalf("Bootstrap after Close error: %v", err)
	}
	second.Close()
}

func TestEnterConvertsHostPanic(t *testing.T) {
	in := testInput(t, "package main\n")
	sess, err := Bootstrap(in)
	if err != nil {
		t.Fatalf("Bootstrap error: %v", err)
	}
	defer sess.Close()

	err = sess.Enter("type checker", func() error {
		panic("internal inconsistency")
	})
	var herr *HostPanicError
	if !errors.As(err, &herr) {
		t.Fatalf("expected *HostPanicError, got %v", err)
	}
	if herr.Stage != "type checker" || herr.Value != "internal inconsistency" {
		t.Fatalf("panic not captured: %+v", herr)
	}
	if len(herr.Stack) == 0 {
		t.Fatalf("stack not captured")
	}
}

func TestEnterOnClosedSession(t *testing.T) {
	in := testInput(t, "package main\n")
	sess, err := Bootstrap(in)
	if err != nil {
		t.Fatalf("Bootstrap error: %v", err)
	}
	sess.Close()

	err = sess.Enter("scanner", func() error { return nil })
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestScannerSinkRecordsOffset(t *testing.T) {
	in := testInput(t, "package main\nvar s = \"abc\n")
	sess, err := Bootstrap(in)
	if err != nil {
		t.Fatalf("Bootstrap error: %v", err)
	}
	defer sess.Close()

	var s scanner.Scanner
	s.Init(sess.File(), in.Content(), sess.ScannerSink(), 0)
	for {
		_, tok, _ := s.Scan()
		if tok == token.EOF {
			break
		}
	}

	if !sess.Bag().HasErrors() {
		t.Fatalf("lexical error not recorded")
	}
	found := false
	for _, d := range sess.Bag().Items() {
		if d.Code == diag.LexInvalidToken && d.Primary.Offset > 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("no lexical diagnostic with offset: %+v", sess.Bag().Items())
	}
}

func TestSinkCountsPastBagCapacity(t *testing.T) {
	in, err := source.ResolveVirtual("main.go", []byte("package main\n"), source.Config{MaxDiagnostics: 1})
	if err != nil {
		t.Fatalf("ResolveVirtual error: %v", err)
	}
	sess, err := Bootstrap(in)
	if err != nil {
		t.Fatalf("Bootstrap error: %v", err)
	}
	defer sess.Close()

	sink := sess.ScannerSink()
	sink(token.Position{Filename: "main.go", Offset: 3}, "first finding")
	sink(token.Position{Filename: "main.go", Offset: 7}, "second finding")

	if got := sess.Bag().Len(); got != 1 {
		t.Fatalf("bag kept %d entries, want the 1-entry limit enforced", got)
	}
	if got := sess.ReportCount(); got != 2 {
		t.Fatalf("ReportCount: got %d want 2", got)
	}
	if got := sess.ErrorCount(); got != 2 {
		t.Fatalf("ErrorCount: got %d want 2", got)
	}
}
