package inspect

import (
	"go/ast"
	"go/token"
	"strings"
)

// SyntaxTree is the parse stage's borrowed view over the host syntax
// tree: read-only, pre-expansion, with stable node identities for the
// duration of the stage callback.
type SyntaxTree struct {
	fset *token.FileSet
	file *ast.File
	sc   *scope
}

// NewSyntaxTree wraps a parsed file. Constructed by the stage driver;
// tools receive the tree through SyntaxInspector.
func NewSyntaxTree(fset *token.FileSet, file *ast.File) *SyntaxTree {
	return &SyntaxTree{fset: fset, file: file, sc: newScope("SyntaxTree")}
}

// PackageName returns the name in the package clause.
func (t *SyntaxTree) PackageName() string {
	t.sc.ensure()
	return t.file.Name.Name
}

// File exposes the underlying host node for tools that need more than
// the visitor surface. Inspection only; mutation is not supported.
func (t *SyntaxTree) File() *ast.File {
	t.sc.ensure()
	return t.file
}

// Position resolves a host position against the session position table.
func (t *SyntaxTree) Position(p token.Pos) token.Position {
	t.sc.ensure()
	return t.fset.Position(p)
}

// Invalidate expires the tree and every Item/Expr handle derived from
// it. Called by the driver when the syntax callback returns.
func (t *SyntaxTree) Invalidate() {
	t.sc.invalidate()
}

// Walk traverses the tree in pre-order with per-kind dispatch: for each
// top-level declaration the visitor first sees its directive attributes,
// then the item itself, then (unless pruned) its expressions. Directives
// not attached to any declaration are dispatched up front.
func (t *SyntaxTree) Walk(v SyntaxVisitor) {
	t.sc.ensure()

	attached := make(map[*ast.CommentGroup]bool)
	for _, decl := range t.file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			attached[d.Doc] = true
		case *ast.GenDecl:
			attached[d.Doc] = true
			for _, spec := range d.Specs {
				switch sp := spec.(type) {
				case *ast.ValueSpec:
					attached[sp.Doc] = true
				case *ast.TypeSpec:
					attached[sp.Doc] = true
				case *ast.ImportSpec:
					attached[sp.Doc] = true
				}
			}
		}
	}
	for _, group := range t.file.Comments {
		if !attached[group] {
			t.walkAttributes(v, group)
		}
	}

	for _, decl := range t.file.Decls {
		t.walkDecl(v, decl)
	}
}

func (t *SyntaxTree) walkAttributes(v SyntaxVisitor, group *ast.CommentGroup) {
	if group == nil {
		return
	}
	for _, c := range group.List {
		if !strings.HasPrefix(c.Text, "//go:") {
			continue
		}
		v.VisitAttribute(Attribute{
			Text: c.Text,
			Pos:  t.fset.Position(c.Pos()),
		})
	}
}

func (t *SyntaxTree) walkDecl(v SyntaxVisitor, decl ast.Decl) {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		t.walkAttributes(v, d.Doc)
		kind := ItemFunc
		if d.Recv != nil {
			kind = ItemMethod
		}
		t.dispatchItem(v, d.Name.Name, kind, d)
	case *ast.GenDecl:
		t.walkAttributes(v, d.Doc)
		for _, spec := range d.Specs {
			t.walkSpec(v, d.Tok, spec)
		}
	}
}

func (t *SyntaxTree) walkSpec(v SyntaxVisitor, tok token.Token, spec ast.Spec) {
	switch sp := spec.(type) {
	case *ast.ImportSpec:
		t.walkAttributes(v, sp.Doc)
		t.dispatchItem(v, sp.Path.Value, ItemImport, sp)
	case *ast.TypeSpec:
		t.walkAttributes(v, sp.Doc)
		t.dispatchItem(v, sp.Name.Name, ItemType, sp)
	case *ast.ValueSpec:
		t.walkAttributes(v, sp.Doc)
		kind := ItemVar
		if tok == token.CONST {
			kind = ItemConst
		}
		for _, name := range sp.Names {
			t.dispatchItem(v, name.Name, kind, sp)
		}
	}
}

func (t *SyntaxTree) dispatchItem(v SyntaxVisitor, name string, kind ItemKind, node ast.Node) {
	item := Item{
		Name:     name,
		Kind:     kind,
		Exported: ast.IsExported(strings.Trim(name, `"`)),
		Pos:      t.fset.Position(node.Pos()),
		node:     node,
		sc:       t.sc,
	}
	if !v.VisitItem(item) {
		return
	}
	ast.Inspect(node, func(n ast.Node) bool {
		e, ok := n.(ast.Expr)
		if !ok {
			return true
		}
		return v.VisitExpr(Expr{
			Kind: exprKind(e),
			Pos:  t.fset.Position(e.Pos()),
			node: e,
			sc:   t.sc,
		})
	})
}

func exprKind(e ast.Expr) string {
	switch e.(type) {
	case *ast.Ident:
		return "ident"
	case *ast.BasicLit:
		return "literal"
	case *ast.CompositeLit:
		return "composite"
	case *ast.FuncLit:
		return "func-lit"
	case *ast.CallExpr:
		return "call"
	case *ast.SelectorExpr:
		return "selector"
	case *ast.IndexExpr, *ast.IndexListExpr:
		return "index"
	case *ast.BinaryExpr:
		return "binary"
	case *ast.UnaryExpr:
		return "unary"
	case *ast.ParenExpr:
		return "paren"
	case *ast.StarExpr:
		return "star"
	case *ast.KeyValueExpr:
		return "key-value"
	case *ast.ArrayType, *ast.StructType, *ast.FuncType,
		*ast.InterfaceType, *ast.MapType, *ast.ChanType:
		return "type"
	}
	return "expr"
}
