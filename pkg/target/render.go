package target

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Render converts an AST node (from Parse) back to request-target bytes.
//
// The node must be an ObjectNode with a "type" property of "target", as
// produced by Parse() or ParseReader(). The raw target is re-classified on
// the way out, so a node whose "form" disagrees with its "target" fails.
func Render(node ast.SchemaNode) ([]byte, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("target: Render: expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	typeProp, ok := props["type"]
	if !ok {
		return nil, fmt.Errorf("target: Render: missing 'type' property")
	}

	typeLit, ok := typeProp.(*ast.LiteralNode)
	if !ok {
		return nil, fmt.Errorf("target: Render: 'type' is not a literal")
	}

	nodeType, ok := typeLit.Value().(string)
	if !ok || nodeType != "target" {
		return nil, fmt.Errorf("target: Render: unsupported node type %v", typeLit.Value())
	}

	t, err := NodeToTarget(node)
	if err != nil {
		return nil, fmt.Errorf("target: Render: %w", err)
	}
	return Marshal(t)
}
