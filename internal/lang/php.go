package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

var phpRules = &rules{
	classKinds: map[string]bool{
		"class_declaration":     true,
		"interface_declaration": true,
		"trait_declaration":     true,
		"enum_declaration":      true,
	},
	funcKinds: map[string]bool{
		"function_definition": true,
		"method_declaration":  true,
	},
	importKinds: map[string]bool{
		"namespace_use_declaration": true,
		"require_expression":        true,
		"require_once_expression":   true,
		"include_expression":        true,
		"include_once_expression":   true,
	},
	skipKinds: map[string]bool{
		"comment":         true,
		"string":          true,
		"encapsed_string": true,
		"heredoc":         true,
	},
	bases: phpBases,
}

// phpBases collects the extends clause and every implements entry.
func phpBases(n *sitter.Node, src []byte) []string {
	var bases []string
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		switch child.Kind() {
		case "base_clause", "class_interface_clause":
			for j := uint(0); j < child.NamedChildCount(); j++ {
				bases = append(bases, nodeText(child.NamedChild(j), src))
			}
		}
	}
	return bases
}
