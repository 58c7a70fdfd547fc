package inspect

import "go/token"

// Token is one lexical token as reported by the host scanner: its kind,
// literal text (empty for punctuation and keywords whose spelling is the
// kind itself) and resolved position.
type Token struct {
	Kind token.Token
	Lit  string
	Pos  token.Position
}

// TokenStream is the lexical stage's borrowed view: a finite,
// non-restartable cursor over the token sequence, ending with EOF.
// There is no rewind and no lookahead past the end.
type TokenStream struct {
	toks []Token
	next int
	sc   *scope
}

// NewTokenStream wraps a scanned token sequence. Constructed by the
// stage driver; tools receive the stream through TokenInspector.
func NewTokenStream(toks []Token) *TokenStream {
	return &TokenStream{toks: toks, sc: newScope("TokenStream")}
}

// Next returns the next token and true, or a zero Token and false once
// the sequence (including the trailing EOF token) is exhausted.
// Panics if the stream is used after its stage callback returned.
func (ts *TokenStream) Next() (Token, bool) {
	ts.sc.ensure()
	if ts.next >= len(ts.toks) {
		return Token{}, false
	}
	t := ts.toks[ts.next]
	ts.next++
	return t, true
}

// Invalidate expires the stream. Called by the driver when the lexical
// callback returns.
func (ts *TokenStream) Invalidate() {
	ts.sc.invalidate()
}
