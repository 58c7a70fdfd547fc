package diagfmt

import (
	"encoding/json"
	"go/token"
	"strings"
	"testing"

	"conduct/internal/inspect"
)

func sampleStream() *inspect.TokenStream {
	return inspect.NewTokenStream([]inspect.Token{
		{Kind: token.PACKAGE, Pos: token.Position{Line: 1, Column: 1, Offset: 0}},
		{Kind: token.IDENT, Lit: "main", Pos: token.Position{Line: 1, Column: 9, Offset: 8}},
		{Kind: token.SEMICOLON, Lit: "\n", Pos: token.Position{Line: 1, Column: 13, Offset: 12}},
		{Kind: token.EOF, Pos: token.Position{Line: 2, Column: 1, Offset: 13}},
	})
}

func TestTokensPretty(t *testing.T) {
	var b strings.Builder
	if err := TokensPretty(&b, sampleStream()); err != nil {
		t.Fatalf("TokensPretty error: %v", err)
	}
	out := b.String()

	if !strings.Contains(out, "package") {
		t.Fatalf("package keyword missing:\n%s", out)
	}
	if !strings.Contains(out, `"main"`) {
		t.Fatalf("identifier literal missing:\n%s", out)
	}
	if !strings.Contains(out, "EOF") {
		t.Fatalf("EOF token missing:\n%s", out)
	}
}

func TestTokensJSON(t *testing.T) {
	var b strings.Builder
	if err := TokensJSON(&b, sampleStream()); err != nil {
		t.Fatalf("TokensJSON error: %v", err)
	}

	var decoded []TokenOutput
	if err := json.Unmarshal([]byte(b.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 4 {
		t.Fatalf("token count: got %d want 4", len(decoded))
	}
	if decoded[1].Kind != "IDENT" || decoded[1].Text != "main" || decoded[1].Offset != 8 {
		t.Fatalf("second token: %+v", decoded[1])
	}
}
