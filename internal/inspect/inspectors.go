package inspect

// TokenInspector receives the lexical stage's token stream. The stream
// is finite and non-restartable; it expires when the method returns.
type TokenInspector interface {
	InspectTokens(ts *TokenStream)
}

// TokenInspectorFunc adapts a function to TokenInspector.
type TokenInspectorFunc func(ts *TokenStream)

func (f TokenInspectorFunc) InspectTokens(ts *TokenStream) { f(ts) }

// SyntaxInspector receives the parsed, un-expanded syntax tree. The tree
// is read-only and expires when the method returns.
type SyntaxInspector interface {
	InspectSyntax(tree *SyntaxTree)
}

// SyntaxInspectorFunc adapts a function to SyntaxInspector.
type SyntaxInspectorFunc func(tree *SyntaxTree)

func (f SyntaxInspectorFunc) InspectSyntax(tree *SyntaxTree) { f(tree) }

// SemanticInspector receives the name-resolved semantic unit together
// with its query handle. Both expire when the method returns.
type SemanticInspector interface {
	InspectSemantics(u *SemanticUnit)
}

// SemanticInspectorFunc adapts a function to SemanticInspector.
type SemanticInspectorFunc func(u *SemanticUnit)

func (f SemanticInspectorFunc) InspectSemantics(u *SemanticUnit) { f(u) }
