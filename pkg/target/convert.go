package target

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

var zeroPos = ast.Position{}

// TargetToNode converts a Target to an AST ObjectNode.
func TargetToNode(t *Target) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":   ast.NewLiteralNode("target", zeroPos),
		"form":   ast.NewLiteralNode(t.Form.String(), zeroPos),
		"target": ast.NewLiteralNode(t.Raw, zeroPos),
	}

	if t.Scheme != "" {
		props["scheme"] = ast.NewLiteralNode(t.Scheme, zeroPos)
	}
	if t.Host != "" {
		props["host"] = ast.NewLiteralNode(t.Host, zeroPos)
	}
	if t.Port != "" {
		props["port"] = ast.NewLiteralNode(t.Port, zeroPos)
	}

	return ast.NewObjectNode(props, zeroPos)
}

// NodeToTarget converts an AST ObjectNode back to a Target.
func NodeToTarget(node ast.SchemaNode) (*Target, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("target: expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	t := &Target{}

	if v, ok := props["form"]; ok {
		lit, ok := v.(*ast.LiteralNode)
		if !ok {
			return nil, fmt.Errorf("target: 'form' is not a literal")
		}
		name, _ := lit.Value().(string)
		form, ok := formFromName(name)
		if !ok {
			return nil, fmt.Errorf("target: unknown form %q", name)
		}
		t.Form = form
	} else {
		return nil, fmt.Errorf("target: missing 'form' property")
	}

	if v, ok := props["target"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			t.Raw, _ = lit.Value().(string)
		}
	}
	if v, ok := props["scheme"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			t.Scheme, _ = lit.Value().(string)
		}
	}
	if v, ok := props["host"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			t.Host, _ = lit.Value().(string)
		}
	}
	if v, ok := props["port"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			t.Port, _ = lit.Value().(string)
		}
	}

	return t, nil
}
