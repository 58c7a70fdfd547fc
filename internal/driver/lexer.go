package driver

import (
	"go/scanner"
	"go/token"

	"conduct/internal/inspect"
)

// RunLexer drives the host scanner over the whole input and, when it
// reports no errors, hands the inspector a stage-scoped token stream.
// On lexical errors it returns a StageError and the inspector is not
// invoked. The stream (including the trailing EOF token) expires when
// the inspector returns.
func (d *Driver) RunLexer(ins inspect.TokenInspector) error {
	if err := d.require(StageLexing); err != nil {
		return err
	}
	stop := d.stop("lexing")

	sess := d.sess
	mark := d.mark()
	var toks []inspect.Token
	err := sess.Enter("scanner", func() error {
		var s scanner.Scanner
		s.Init(sess.File(), sess.Input().Content(), sess.ScannerSink(), scanner.ScanComments)
		for {
			pos, tok, lit := s.Scan()
			toks = append(toks, inspect.Token{
				Kind: tok,
				Lit:  lit,
				Pos:  sess.FileSet().Position(pos),
			})
			if tok == token.EOF {
				return nil
			}
		}
	})
	if err != nil {
		stop("host panic")
		return err
	}
	if d.stageErrors(mark) {
		stop("failed")
		return d.failed(StageLexing, mark)
	}

	d.next = StageParsing
	stream := inspect.NewTokenStream(toks)
	defer stream.Invalidate()
	ins.InspectTokens(stream)
	stop("")
	return nil
}
