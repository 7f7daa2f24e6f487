package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

var javaRules = &rules{
	classKinds: map[string]bool{
		"class_declaration":     true,
		"interface_declaration": true,
		"enum_declaration":      true,
		"record_declaration":    true,
	},
	funcKinds: map[string]bool{
		"method_declaration":      true,
		"constructor_declaration": true,
	},
	importKinds: map[string]bool{
		"import_declaration": true,
	},
	skipKinds: map[string]bool{
		"line_comment":   true,
		"block_comment":  true,
		"string_literal": true,
	},
	bases: javaBases,
}

// javaBases collects the extends type and every implements/extends-list
// entry, each kept as written (generics included).
func javaBases(n *sitter.Node, src []byte) []string {
	var bases []string
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		switch child.Kind() {
		case "superclass":
			for j := uint(0); j < child.NamedChildCount(); j++ {
				bases = append(bases, nodeText(child.NamedChild(j), src))
			}
		case "super_interfaces", "extends_interfaces":
			if list := findChildByKind(child, "type_list"); list != nil {
				for j := uint(0); j < list.NamedChildCount(); j++ {
					bases = append(bases, nodeText(list.NamedChild(j), src))
				}
			}
		}
	}
	return bases
}
