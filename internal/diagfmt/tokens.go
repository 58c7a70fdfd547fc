package diagfmt

import (
	"encoding/json"
	"fmt"
	"go/token"
	"io"

	"conduct/internal/inspect"
)

// TokenOutput is the JSON shape of one lexical token.
type TokenOutput struct {
	Kind   string `json:"kind"`
	Text   string `json:"text,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Offset int    `json:"offset"`
}

// TokensPretty drains the stream and prints one token per line in a
// human-readable format. Must run inside the lexical stage callback.
func TokensPretty(w io.Writer, ts *inspect.TokenStream) error {
	i := 0
	for {
		tok, ok := ts.Next()
		if !ok {
			return nil
		}
		i++
		fmt.Fprintf(w, "%3d: %-12s", i, tok.Kind.String())
		if tok.Lit != "" && tok.Kind != token.EOF {
			fmt.Fprintf(w, " %q", tok.Lit)
		}
		fmt.Fprintf(w, " at %d:%d\n", tok.Pos.Line, tok.Pos.Column)
	}
}

// TokensJSON drains the stream and writes the tokens as indented JSON.
// Must run inside the lexical stage callback.
func TokensJSON(w io.Writer, ts *inspect.TokenStream) error {
	var output []TokenOutput
	for {
		tok, ok := ts.Next()
		if !ok {
			break
		}
		output = append(output, TokenOutput{
			Kind:   tok.Kind.String(),
			Text:   tok.Lit,
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
			Offset: tok.Pos.Offset,
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
