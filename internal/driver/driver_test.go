package driver

import (
	"errors"
	"go/ast"
	"go/token"
	"strings"
	"testing"

	"conduct/internal/diag"
	"conduct/internal/inspect"
	"conduct/internal/session"
	"conduct/internal/source"
)

func newTestDriver(t *testing.T, src string) (*Driver, *session.Session) {
	t.Helper()
	in, err := source.ResolveVirtual("main.go", []byte(src), source.Config{})
	if err != nil {
		t.Fatalf("ResolveVirtual error: %v", err)
	}
	sess, err := session.Bootstrap(in)
	if err != nil {
		t.Fatalf("Bootstrap error: %v", err)
	}
	t.Cleanup(sess.Close)
	return New(sess, Options{}), sess
}

func discardTokens() inspect.TokenInspector {
	return inspect.TokenInspectorFunc(func(*inspect.TokenStream) {})
}

func discardSyntax() inspect.SyntaxInspector {
	return inspect.SyntaxInspectorFunc(func(*inspect.SyntaxTree) {})
}

func discardSemantics() inspect.SemanticInspector {
	return inspect.SemanticInspectorFunc(func(*inspect.SemanticUnit) {})
}

func TestFullPipelineOnMinimalProgram(t *testing.T) {
	drv, _ := newTestDriver(t, "package main\nfunc main() {}\n")

	var lexCalls, parseCalls, semaCalls int

	err := drv.RunLexer(inspect.TokenInspectorFunc(func(ts *inspect.TokenStream) {
		lexCalls++
		first, ok := ts.Next()
		if !ok || first.Kind != token.PACKAGE {
			t.Errorf("first token: got %v ok=%v, want package", first.Kind, ok)
		}
		var last inspect.Token
		for {
			tok, more := ts.Next()
			if !more {
				break
			}
			last = tok
		}
		if last.Kind != token.EOF {
			t.Errorf("last token: got %v, want EOF", last.Kind)
		}
	}))
	if err != nil {
		t.Fatalf("RunLexer error: %v", err)
	}

	err = drv.RunParser(inspect.SyntaxInspectorFunc(func(tree *inspect.SyntaxTree) {
		parseCalls++
		if tree.PackageName() != "main" {
			t.Errorf("package name: got %q", tree.PackageName())
		}
	}))
	if err != nil {
		t.Fatalf("RunParser error: %v", err)
	}

	err = drv.RunSemantic(inspect.SemanticInspectorFunc(func(u *inspect.SemanticUnit) {
		semaCalls++
		items := u.Items()
		if len(items) != 1 {
			t.Fatalf("items: got %+v, want exactly one", items)
		}
		got := items[0]
		if got.Name != "main" || got.Kind != inspect.ItemFunc || got.Type != "func()" {
			t.Errorf("main item: got %+v", got)
		}
		if got.Exported {
			t.Errorf("main reported as exported")
		}
	}))
	if err != nil {
		t.Fatalf("RunSemantic error: %v", err)
	}

	if lexCalls != 1 || parseCalls != 1 || semaCalls != 1 {
		t.Fatalf("callback counts: lex=%d parse=%d sema=%d, want 1 each", lexCalls, parseCalls, semaCalls)
	}
	if n := len(drv.Diagnostics()); n != 0 {
		t.Fatalf("expected zero diagnostics, got %d: %+v", n, drv.Diagnostics())
	}
}

func TestStageOrderViolation(t *testing.T) {
	drv, _ := newTestDriver(t, "package main\nfunc main() {}\n")

	var orderErr *OrderError
	if err := drv.RunSemantic(discardSemantics()); !errors.As(err, &orderErr) {
		t.Fatalf("RunSemantic first: expected *OrderError, got %v", err)
	}
	if err := drv.RunParser(discardSyntax()); !errors.As(err, &orderErr) {
		t.Fatalf("RunParser first: expected *OrderError, got %v", err)
	}

	// A violation never corrupts the machine: the proper order still works.
	if err := drv.RunLexer(discardTokens()); err != nil {
		t.Fatalf("RunLexer after violations: %v", err)
	}
	if err := drv.RunLexer(discardTokens()); !errors.As(err, &orderErr) {
		t.Fatalf("repeated RunLexer: expected *OrderError, got %v", err)
	}
	if err := drv.RunParser(discardSyntax()); err != nil {
		t.Fatalf("RunParser: %v", err)
	}
	if err := drv.RunSemantic(discardSemantics()); err != nil {
		t.Fatalf("RunSemantic: %v", err)
	}
}

func TestLexicalErrorFailsStageWithoutCallback(t *testing.T) {
	src := "package main\nvar s = \"abc\n"
	drv, _ := newTestDriver(t, src)

	invoked := false
	err := drv.RunLexer(inspect.TokenInspectorFunc(func(*inspect.TokenStream) {
		invoked = true
	}))

	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("expected *StageError, got %v", err)
	}
	if stageErr.Stage != StageLexing {
		t.Fatalf("stage: got %v want %v", stageErr.Stage, StageLexing)
	}
	if invoked {
		t.Fatalf("token callback invoked despite lexical failure")
	}

	wantOffset := strings.IndexByte(src, '"')
	found := false
	for _, d := range stageErr.Diagnostics {
		if d.Primary.Offset == wantOffset {
			found = true
		}
	}
	if !found {
		t.Fatalf("no diagnostic at offset %d: %+v", wantOffset, stageErr.Diagnostics)
	}

	// The failed stage did not advance; parsing is still out of order.
	var orderErr *OrderError
	if err := drv.RunParser(discardSyntax()); !errors.As(err, &orderErr) {
		t.Fatalf("RunParser after failed lexing: expected *OrderError, got %v", err)
	}
}

func TestParseErrorFailsStageWithoutCallback(t *testing.T) {
	drv, _ := newTestDriver(t, "package main\nfunc {\n")

	if err := drv.RunLexer(discardTokens()); err != nil {
		t.Fatalf("RunLexer error: %v", err)
	}

	invoked := false
	err := drv.RunParser(inspect.SyntaxInspectorFunc(func(*inspect.SyntaxTree) {
		invoked = true
	}))
	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("expected *StageError, got %v", err)
	}
	if stageErr.Stage != StageParsing {
		t.Fatalf("stage: got %v want %v", stageErr.Stage, StageParsing)
	}
	if invoked {
		t.Fatalf("syntax callback invoked despite parse failure")
	}
	if len(stageErr.Diagnostics) == 0 {
		t.Fatalf("parse failure carries no diagnostics")
	}
}

func TestUnresolvedNameFailsSemanticStage(t *testing.T) {
	drv, _ := newTestDriver(t, "package main\nfunc main() { println(missing) }\n")

	if err := drv.RunLexer(discardTokens()); err != nil {
		t.Fatalf("RunLexer error: %v", err)
	}

	// The parse callback still observes a valid tree beforehand.
	parsed := false
	err := drv.RunParser(inspect.SyntaxInspectorFunc(func(tree *inspect.SyntaxTree) {
		parsed = true
		if tree.PackageName() != "main" {
			t.Errorf("package name: got %q", tree.PackageName())
		}
	}))
	if err != nil {
		t.Fatalf("RunParser error: %v", err)
	}
	if !parsed {
		t.Fatalf("syntax callback not invoked")
	}

	invoked := false
	err = drv.RunSemantic(inspect.SemanticInspectorFunc(func(*inspect.SemanticUnit) {
		invoked = true
	}))
	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("expected *StageError, got %v", err)
	}
	if stageErr.Stage != StageResolution {
		t.Fatalf("stage: got %v want %v", stageErr.Stage, StageResolution)
	}
	if invoked {
		t.Fatalf("semantic callback invoked despite resolution failure")
	}
	found := false
	for _, d := range stageErr.Diagnostics {
		if strings.Contains(d.Message, "missing") {
			found = true
		}
	}
	if !found {
		t.Fatalf("no diagnostic mentioning the unresolved name: %+v", stageErr.Diagnostics)
	}
}

func TestViewsExpireWhenCallbackReturns(t *testing.T) {
	drv, _ := newTestDriver(t, "package main\nfunc main() {}\n")

	var stream *inspect.TokenStream
	if err := drv.RunLexer(inspect.TokenInspectorFunc(func(ts *inspect.TokenStream) {
		stream = ts
	})); err != nil {
		t.Fatalf("RunLexer error: %v", err)
	}
	mustPanic(t, "TokenStream", func() { stream.Next() })

	var tree *inspect.SyntaxTree
	if err := drv.RunParser(inspect.SyntaxInspectorFunc(func(st *inspect.SyntaxTree) {
		tree = st
	})); err != nil {
		t.Fatalf("RunParser error: %v", err)
	}
	mustPanic(t, "SyntaxTree", func() { tree.PackageName() })

	var unit *inspect.SemanticUnit
	var queries *inspect.QueryEngine
	if err := drv.RunSemantic(inspect.SemanticInspectorFunc(func(u *inspect.SemanticUnit) {
		unit = u
		queries = u.Queries()
	})); err != nil {
		t.Fatalf("RunSemantic error: %v", err)
	}
	mustPanic(t, "SemanticUnit", func() { unit.Items() })
	mustPanic(t, "QueryEngine", func() { queries.TypeOf(nil) })
}

func TestDriverStopsAtRequestedStage(t *testing.T) {
	// An attribute-only tool drives to the syntax tree and never pays
	// for type checking.
	drv, _ := newTestDriver(t, "package main\n\n//go:noinline\nfunc main() {}\n")

	if err := drv.RunLexer(discardTokens()); err != nil {
		t.Fatalf("RunLexer error: %v", err)
	}

	var attrs []string
	err := drv.RunParser(inspect.SyntaxInspectorFunc(func(tree *inspect.SyntaxTree) {
		tree.Walk(&attrCollector{attrs: &attrs})
	}))
	if err != nil {
		t.Fatalf("RunParser error: %v", err)
	}
	if len(attrs) != 1 || attrs[0] != "//go:noinline" {
		t.Fatalf("attributes: got %v", attrs)
	}
}

type attrCollector struct {
	inspect.NopVisitor
	attrs *[]string
}

func (c *attrCollector) VisitAttribute(attr inspect.Attribute) {
	*c.attrs = append(*c.attrs, attr.Text)
}

func TestQueryEngineResolvesTypes(t *testing.T) {
	drv, _ := newTestDriver(t, "package main\n\nconst answer = 42\n\nfunc main() { _ = answer }\n")

	if err := drv.RunLexer(discardTokens()); err != nil {
		t.Fatalf("RunLexer error: %v", err)
	}
	if err := drv.RunParser(discardSyntax()); err != nil {
		t.Fatalf("RunParser error: %v", err)
	}

	err := drv.RunSemantic(inspect.SemanticInspectorFunc(func(u *inspect.SemanticUnit) {
		found := false
		for _, item := range u.Items() {
			if item.Name == "answer" && item.Kind == inspect.ItemConst {
				found = true
			}
		}
		if !found {
			t.Errorf("answer const not resolved: %+v", u.Items())
		}

		q := u.Queries()
		var use *ast.Ident
		ast.Inspect(u.File(), func(n ast.Node) bool {
			if id, ok := n.(*ast.Ident); ok && id.Name == "answer" {
				if _, isUse := q.UseOf(id); isUse {
					use = id
				}
			}
			return true
		})
		if use == nil {
			t.Fatalf("no resolved use of answer found")
		}
		typ, ok := q.TypeOf(use)
		if !ok {
			t.Fatalf("TypeOf(answer) not recorded")
		}
		if typ.String() != "untyped int" && typ.String() != "int" {
			t.Errorf("TypeOf(answer) = %s", typ)
		}
		obj, ok := q.ObjectOf(use)
		if !ok || obj.Name() != "answer" {
			t.Errorf("ObjectOf(answer) = %v ok=%v", obj, ok)
		}
	}))
	if err != nil {
		t.Fatalf("RunSemantic error: %v", err)
	}
}

func mustPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic on use after callback return", what)
		}
	}()
	fn()
}

func TestSoftTypeErrorPassesAsWarning(t *testing.T) {
	drv, sess := newTestDriver(t, "package main\nfunc main() { x := 1 }\n")

	if err := drv.RunLexer(discardTokens()); err != nil {
		t.Fatalf("RunLexer error: %v", err)
	}
	if err := drv.RunParser(discardSyntax()); err != nil {
		t.Fatalf("RunParser error: %v", err)
	}

	invoked := false
	if err := drv.RunSemantic(inspect.SemanticInspectorFunc(func(*inspect.SemanticUnit) {
		invoked = true
	})); err != nil {
		t.Fatalf("RunSemantic error: %v", err)
	}
	if !invoked {
		t.Fatalf("semantic callback not invoked")
	}

	items := sess.Bag().Items()
	if len(items) != 1 {
		t.Fatalf("diagnostics: got %d, want exactly one warning: %+v", len(items), items)
	}
	got := items[0]
	if got.Severity != diag.SevWarning || got.Code != diag.SemaSoftError {
		t.Fatalf("diagnostic: got %s %s, want %s %s", got.Severity, got.Code, diag.SevWarning, diag.SemaSoftError)
	}
	if !strings.Contains(got.Message, "declared and not used") {
		t.Fatalf("message: got %q", got.Message)
	}
	if sess.Bag().HasErrors() {
		t.Fatalf("soft finding escalated to an error: %+v", items)
	}
}

func TestErrorPastDiagnosticLimitStillFailsStage(t *testing.T) {
	src := "package main\nfunc helper() { x := 1 }\nfunc main() { undefinedName() }\n"
	in, err := source.ResolveVirtual("main.go", []byte(src), source.Config{MaxDiagnostics: 1})
	if err != nil {
		t.Fatalf("ResolveVirtual error: %v", err)
	}
	sess, err := session.Bootstrap(in)
	if err != nil {
		t.Fatalf("Bootstrap error: %v", err)
	}
	t.Cleanup(sess.Close)
	drv := New(sess, Options{})

	if err := drv.RunLexer(discardTokens()); err != nil {
		t.Fatalf("RunLexer error: %v", err)
	}
	if err := drv.RunParser(discardSyntax()); err != nil {
		t.Fatalf("RunParser error: %v", err)
	}

	// The helper's unused variable fills the one-entry bag with a
	// warning before the checker reaches the undefined name; the bag
	// drops the error, but the stage must still fail on it.
	invoked := false
	err = drv.RunSemantic(inspect.SemanticInspectorFunc(func(*inspect.SemanticUnit) {
		invoked = true
	}))
	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("expected *StageError, got %v", err)
	}
	if stageErr.Stage != StageResolution {
		t.Fatalf("stage: got %v want %v", stageErr.Stage, StageResolution)
	}
	if invoked {
		t.Fatalf("semantic callback invoked despite a dropped resolution error")
	}
	if sess.Bag().HasErrors() {
		t.Fatalf("bag kept the dropped error, limit not exercised: %+v", sess.Bag().Items())
	}
	if sess.ErrorCount() != 1 {
		t.Fatalf("ErrorCount: got %d want 1", sess.ErrorCount())
	}
}
