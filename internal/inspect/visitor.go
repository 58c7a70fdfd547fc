package inspect

import (
	"go/ast"
	"go/token"
)

// SyntaxVisitor is implemented by tools that walk the syntax tree.
// VisitItem and VisitExpr return false to prune the subtree.
type SyntaxVisitor interface {
	VisitItem(item Item) bool
	VisitAttribute(attr Attribute)
	VisitExpr(expr Expr) bool
}

// NopVisitor visits everything and prunes nothing. Embed it to
// implement only the methods a tool cares about.
type NopVisitor struct{}

func (NopVisitor) VisitItem(Item) bool      { return true }
func (NopVisitor) VisitAttribute(Attribute) {}
func (NopVisitor) VisitExpr(Expr) bool      { return true }

// ItemKind classifies a top-level declaration.
type ItemKind uint8

const (
	ItemFunc ItemKind = iota
	ItemMethod
	ItemType
	ItemConst
	ItemVar
	ItemImport
)

func (k ItemKind) String() string {
	switch k {
	case ItemFunc:
		return "func"
	case ItemMethod:
		return "method"
	case ItemType:
		return "type"
	case ItemConst:
		return "const"
	case ItemVar:
		return "var"
	case ItemImport:
		return "import"
	}
	return "unknown"
}

// Item is one top-level declaration: name, kind, visibility
// (exportedness) and position. For imports the name is the quoted path.
type Item struct {
	Name     string
	Kind     ItemKind
	Exported bool
	Pos      token.Position

	node ast.Node
	sc   *scope
}

// Node exposes the underlying host node. Inspection only; the handle
// expires with the tree it was derived from.
func (it Item) Node() ast.Node {
	it.sc.ensure()
	return it.node
}

// Attribute is a compiler directive comment (the //go: family),
// the closest analogue of a source-level attribute.
type Attribute struct {
	Text string
	Pos  token.Position
}

// Expr is one expression encountered during traversal, classified by a
// coarse kind string for dispatch.
type Expr struct {
	Kind string
	Pos  token.Position

	node ast.Expr
	sc   *scope
}

// Node exposes the underlying host expression node. Inspection only.
func (e Expr) Node() ast.Expr {
	e.sc.ensure()
	return e.node
}
