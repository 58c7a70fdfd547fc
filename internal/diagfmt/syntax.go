package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"conduct/internal/inspect"
)

// outlineVisitor renders the item-level shape of a syntax tree.
type outlineVisitor struct {
	inspect.NopVisitor
	w io.Writer
}

func (v *outlineVisitor) VisitAttribute(attr inspect.Attribute) {
	fmt.Fprintf(v.w, "  attr  %s (%d:%d)\n", attr.Text, attr.Pos.Line, attr.Pos.Column)
}

func (v *outlineVisitor) VisitItem(item inspect.Item) bool {
	vis := "private"
	if item.Exported {
		vis = "exported"
	}
	fmt.Fprintf(v.w, "  %-6s %s [%s] (%d:%d)\n", item.Kind, item.Name, vis, item.Pos.Line, item.Pos.Column)
	// Item outline only; expressions stay collapsed.
	return false
}

// SyntaxPretty prints the package clause and the top-level items of the
// tree. Must run inside the syntax stage callback.
func SyntaxPretty(w io.Writer, tree *inspect.SyntaxTree) error {
	fmt.Fprintf(w, "package %s\n", tree.PackageName())
	tree.Walk(&outlineVisitor{w: w})
	return nil
}

// SyntaxItemOutput is the JSON shape of one top-level item.
type SyntaxItemOutput struct {
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Exported bool   `json:"exported"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// SyntaxOutput is the JSON shape of a parsed file.
type SyntaxOutput struct {
	Package    string             `json:"package"`
	Attributes []string           `json:"attributes,omitempty"`
	Items      []SyntaxItemOutput `json:"items"`
}

type collectVisitor struct {
	inspect.NopVisitor
	out *SyntaxOutput
}

func (v *collectVisitor) VisitAttribute(attr inspect.Attribute) {
	v.out.Attributes = append(v.out.Attributes, attr.Text)
}

func (v *collectVisitor) VisitItem(item inspect.Item) bool {
	v.out.Items = append(v.out.Items, SyntaxItemOutput{
		Kind:     item.Kind.String(),
		Name:     item.Name,
		Exported: item.Exported,
		Line:     item.Pos.Line,
		Column:   item.Pos.Column,
	})
	return false
}

// BuildSyntaxJSON collects the serialisable outline of the tree.
// Must run inside the syntax stage callback.
func BuildSyntaxJSON(tree *inspect.SyntaxTree) SyntaxOutput {
	out := SyntaxOutput{Package: tree.PackageName(), Items: []SyntaxItemOutput{}}
	tree.Walk(&collectVisitor{out: &out})
	return out
}

// SyntaxJSON writes the outline of the tree as indented JSON.
// Must run inside the syntax stage callback.
func SyntaxJSON(w io.Writer, tree *inspect.SyntaxTree) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildSyntaxJSON(tree))
}
