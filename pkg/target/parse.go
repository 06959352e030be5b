package target

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Parse classifies a request target into an AST.
//
// The input is a single request-target token. Returns an ast.ObjectNode with
// the classified form and the extracted components:
//
//	{ "type": "target", "form": "absolute-form",
//	  "target": "https://example.com", "scheme": "https" }
//
// "scheme" is present only for absolute-form; "host" and "port" only for
// authority-form (port only when one was found).
func Parse(input string) (ast.SchemaNode, error) {
	t, err := ClassifyTarget(input)
	if err != nil {
		return nil, err
	}
	return TargetToNode(t), nil
}

// ParseReader reads all data from r and classifies it as a request target
// into an AST.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	t, err := ClassifyTarget(string(data))
	if err != nil {
		return nil, err
	}
	return TargetToNode(t), nil
}
