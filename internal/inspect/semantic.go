package inspect

import (
	"go/ast"
	"go/token"
	"go/types"
)

// SemanticUnit is the final stage's borrowed view: the name-resolved,
// type-checked representation of the input plus the query handle into
// the host's resolution engine. Valid only inside the semantic callback.
type SemanticUnit struct {
	fset *token.FileSet
	file *ast.File
	pkg  *types.Package
	info *types.Info
	sc   *scope
}

// NewSemanticUnit wraps a type-checked package. Constructed by the stage
// driver; tools receive the unit through SemanticInspector.
func NewSemanticUnit(fset *token.FileSet, file *ast.File, pkg *types.Package, info *types.Info) *SemanticUnit {
	return &SemanticUnit{fset: fset, file: file, pkg: pkg, info: info, sc: newScope("SemanticUnit")}
}

// PackagePath returns the resolved package path.
func (u *SemanticUnit) PackagePath() string {
	u.sc.ensure()
	return u.pkg.Path()
}

// PackageName returns the resolved package name.
func (u *SemanticUnit) PackageName() string {
	u.sc.ensure()
	return u.pkg.Name()
}

// SemanticItem describes one resolved top-level object.
type SemanticItem struct {
	Name     string
	Kind     ItemKind
	Type     string // the resolved type, e.g. "func()" for a niladic function
	Exported bool
	Pos      token.Position
}

// Items returns the resolved top-level objects of the unit in the
// scope's deterministic (sorted) order.
func (u *SemanticUnit) Items() []SemanticItem {
	u.sc.ensure()
	scope := u.pkg.Scope()
	names := scope.Names()
	items := make([]SemanticItem, 0, len(names))
	for _, name := range names {
		obj := scope.Lookup(name)
		items = append(items, SemanticItem{
			Name:     name,
			Kind:     objectKind(obj),
			Type:     obj.Type().String(),
			Exported: obj.Exported(),
			Pos:      u.fset.Position(obj.Pos()),
		})
	}
	return items
}

// Queries returns the handle for further semantic queries. It borrows
// from the session and expires together with the unit; do not retain it
// past the callback.
func (u *SemanticUnit) Queries() *QueryEngine {
	u.sc.ensure()
	return &QueryEngine{unit: u}
}

// Invalidate expires the unit and its query handle. Called by the
// driver when the semantic callback returns.
func (u *SemanticUnit) Invalidate() {
	u.sc.invalidate()
}

func objectKind(obj types.Object) ItemKind {
	switch o := obj.(type) {
	case *types.Func:
		if sig, ok := o.Type().(*types.Signature); ok && sig.Recv() != nil {
			return ItemMethod
		}
		return ItemFunc
	case *types.TypeName:
		return ItemType
	case *types.Const:
		return ItemConst
	case *types.Var:
		return ItemVar
	}
	return ItemVar
}

// QueryEngine answers semantic questions about nodes of the analyzed
// file, backed by the host's resolution tables.
type QueryEngine struct {
	unit *SemanticUnit
}

// TypeOf returns the resolved type of an expression of the analyzed
// file, if the host recorded one.
func (q *QueryEngine) TypeOf(e ast.Expr) (types.Type, bool) {
	q.unit.sc.ensure()
	t := q.unit.info.TypeOf(e)
	return t, t != nil
}

// ObjectOf returns the object denoted by an identifier: its definition
// if the identifier introduces one, otherwise its use.
func (q *QueryEngine) ObjectOf(id *ast.Ident) (types.Object, bool) {
	q.unit.sc.ensure()
	obj := q.unit.info.ObjectOf(id)
	return obj, obj != nil
}

// DefOf returns the object an identifier defines, if any.
func (q *QueryEngine) DefOf(id *ast.Ident) (types.Object, bool) {
	q.unit.sc.ensure()
	obj := q.unit.info.Defs[id]
	return obj, obj != nil
}

// UseOf returns the object an identifier refers to, if any.
func (q *QueryEngine) UseOf(id *ast.Ident) (types.Object, bool) {
	q.unit.sc.ensure()
	obj := q.unit.info.Uses[id]
	return obj, obj != nil
}

// File returns the syntax tree the semantic facts are keyed by, for
// walking alongside queries. Inspection only.
func (u *SemanticUnit) File() *ast.File {
	u.sc.ensure()
	return u.file
}

// Position resolves a host position against the session position table.
func (u *SemanticUnit) Position(p token.Pos) token.Position {
	u.sc.ensure()
	return u.fset.Position(p)
}
