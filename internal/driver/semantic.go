package driver

import (
	"go/ast"
	"go/importer"
	"go/types"

	"conduct/internal/inspect"
)

// RunSemantic expands and resolves the parsed tree through the host
// type-checker and, on success, hands the inspector the semantic unit
// with its query handle. Both expire when the inspector returns; after
// that the session may be closed.
//
// Imports are resolved through the host's default importer, so sources
// that import packages outside the standard library need those packages
// installed where the toolchain can find them.
func (d *Driver) RunSemantic(ins inspect.SemanticInspector) error {
	if err := d.require(StageResolution); err != nil {
		return err
	}
	stop := d.stop("resolution")

	sess := d.sess
	mark := d.mark()
	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}
	var pkg *types.Package
	err := sess.Enter("type checker", func() error {
		conf := types.Config{
			Error:     sess.TypeErrorSink(),
			Importer:  importer.Default(),
			GoVersion: sess.Input().GoVersion(),
		}
		checked, checkErr := conf.Check(d.file.Name.Name, sess.FileSet(), []*ast.File{d.file}, info)
		pkg = checked
		if checkErr != nil && !d.reported(mark) {
			// The sink never fired, so the failure bypassed the
			// types.Config.Error hook (soft errors do fire it).
			sess.RecordCheckError(checkErr)
		}
		return nil
	})
	if err != nil {
		stop("host panic")
		return err
	}
	if pkg == nil || d.stageErrors(mark) {
		stop("failed")
		return d.failed(StageResolution, mark)
	}

	d.next = stageDone
	unit := inspect.NewSemanticUnit(sess.FileSet(), d.file, pkg, info)
	defer unit.Invalidate()
	ins.InspectSemantics(unit)
	stop("")
	return nil
}
