package driver

import (
	"go/ast"
	"go/parser"

	"conduct/internal/inspect"
)

// RunParser drives the host parser over the input and, on success,
// hands the inspector a stage-scoped view of the syntax tree. The tree
// is read-only and expires when the inspector returns; the driver
// retains the underlying file for the resolution stage.
func (d *Driver) RunParser(ins inspect.SyntaxInspector) error {
	if err := d.require(StageParsing); err != nil {
		return err
	}
	stop := d.stop("parsing")

	sess := d.sess
	mark := d.mark()
	var file *ast.File
	err := sess.Enter("parser", func() error {
		parsed, parseErr := parser.ParseFile(
			sess.FileSet(),
			sess.Input().Path(),
			sess.Input().Content(),
			parser.ParseComments|parser.AllErrors,
		)
		file = parsed
		sess.RecordParseErrors(parseErr)
		return nil
	})
	if err != nil {
		stop("host panic")
		return err
	}
	if file == nil || d.stageErrors(mark) {
		stop("failed")
		return d.failed(StageParsing, mark)
	}

	d.file = file
	d.next = StageResolution
	tree := inspect.NewSyntaxTree(sess.FileSet(), file)
	defer tree.Invalidate()
	ins.InspectSyntax(tree)
	stop("")
	return nil
}
