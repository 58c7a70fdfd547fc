package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"conduct/internal/inspect"
)

// SemanticsPretty prints the resolved top-level objects of the unit.
// Must run inside the semantic stage callback.
func SemanticsPretty(w io.Writer, u *inspect.SemanticUnit) error {
	fmt.Fprintf(w, "package %s\n", u.PackageName())
	for _, item := range u.Items() {
		vis := "private"
		if item.Exported {
			vis = "exported"
		}
		fmt.Fprintf(w, "  %-6s %s: %s [%s] (%d:%d)\n",
			item.Kind, item.Name, item.Type, vis, item.Pos.Line, item.Pos.Column)
	}
	return nil
}

// SemanticItemOutput is the JSON shape of one resolved object.
type SemanticItemOutput struct {
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Exported bool   `json:"exported"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// SemanticsOutput is the JSON shape of a resolved unit.
type SemanticsOutput struct {
	Package string               `json:"package"`
	Items   []SemanticItemOutput `json:"items"`
}

// SemanticsJSON writes the resolved objects as indented JSON.
// Must run inside the semantic stage callback.
func SemanticsJSON(w io.Writer, u *inspect.SemanticUnit) error {
	out := SemanticsOutput{Package: u.PackageName(), Items: []SemanticItemOutput{}}
	for _, item := range u.Items() {
		out.Items = append(out.Items, SemanticItemOutput{
			Kind:     item.Kind.String(),
			Name:     item.Name,
			Type:     item.Type,
			Exported: item.Exported,
			Line:     item.Pos.Line,
			Column:   item.Pos.Column,
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
