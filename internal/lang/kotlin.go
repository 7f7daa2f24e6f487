package lang

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// kotlinRules: interfaces parse as class_declaration in the Kotlin grammar,
// so one kind covers classes, data classes, interfaces and objects. suspend
// maps onto is_async.
var kotlinRules = &rules{
	classKinds: map[string]bool{
		"class_declaration":  true,
		"object_declaration": true,
	},
	funcKinds: map[string]bool{
		"function_declaration": true,
	},
	importKinds: map[string]bool{
		"import_header": true,
	},
	skipKinds: map[string]bool{
		"line_comment":      true,
		"multiline_comment": true,
		"string_literal":    true,
	},
	bases:  kotlinBases,
	params: kotlinParams,
}

// kotlinBases reads delegation specifiers after the colon; constructor
// invocations reduce to the named type ("Base()" -> "Base").
func kotlinBases(n *sitter.Node, src []byte) []string {
	var bases []string
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child.Kind() != "delegation_specifier" {
			continue
		}
		text := nodeText(child, src)
		if t := findDescendantByKind(child, "user_type"); t != nil {
			text = nodeText(t, src)
		} else if idx := strings.Index(text, "("); idx > 0 {
			text = text[:idx]
		}
		bases = append(bases, strings.TrimSpace(text))
	}
	return bases
}

func kotlinParams(n *sitter.Node, src []byte) []string {
	list := findChildByKind(n, "function_value_parameters")
	if list == nil {
		return nil
	}
	var params []string
	for i := uint(0); i < list.NamedChildCount(); i++ {
		child := list.NamedChild(i)
		if child.Kind() != "parameter" {
			continue
		}
		if name := firstValueIdentifier(child, src); name != "" {
			params = append(params, name)
		}
	}
	return params
}

// findDescendantByKind does a depth-first search for the first node of the
// given kind.
func findDescendantByKind(node *sitter.Node, kind string) *sitter.Node {
	if node == nil {
		return nil
	}
	if node.Kind() == kind {
		return node
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if found := findDescendantByKind(node.Child(i), kind); found != nil {
			return found
		}
	}
	return nil
}
