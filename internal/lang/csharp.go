package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

var csharpRules = &rules{
	classKinds: map[string]bool{
		"class_declaration":     true,
		"interface_declaration": true,
		"struct_declaration":    true,
		"record_declaration":    true,
	},
	funcKinds: map[string]bool{
		"method_declaration":      true,
		"constructor_declaration": true,
	},
	importKinds: map[string]bool{
		"using_directive": true,
	},
	skipKinds: map[string]bool{
		"comment":                        true,
		"string_literal":                 true,
		"verbatim_string_literal":        true,
		"interpolated_string_expression": true,
		"raw_string_literal":             true,
	},
	bases: csharpBases,
}

// csharpBases reads the base list (": Base, IFirst, ISecond"); C# does not
// syntactically distinguish the superclass from interfaces, so all entries
// are kept in order.
func csharpBases(n *sitter.Node, src []byte) []string {
	list := findChildByKind(n, "base_list")
	if list == nil {
		return nil
	}
	var bases []string
	for i := uint(0); i < list.NamedChildCount(); i++ {
		bases = append(bases, nodeText(list.NamedChild(i), src))
	}
	return bases
}
