package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// typescriptRules also covers TSX; the two grammars share node kinds.
var typescriptRules = &rules{
	classKinds: map[string]bool{
		"class_declaration":          true,
		"abstract_class_declaration": true,
		"interface_declaration":      true,
	},
	funcKinds: map[string]bool{
		"function_declaration":           true,
		"generator_function_declaration": true,
	},
	methodKinds: map[string]bool{
		"method_definition":         true,
		"method_signature":          true,
		"abstract_method_signature": true,
	},
	importKinds: map[string]bool{
		"import_statement": true,
	},
	skipKinds: map[string]bool{
		"comment":         true,
		"string":          true,
		"template_string": true,
		"regex":           true,
	},
	bases: tsBases,
	flags: jsFlags,
}

// tsBases collects extends and implements clauses, classes and interfaces
// alike, in source order.
func tsBases(n *sitter.Node, src []byte) []string {
	var bases []string
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		switch child.Kind() {
		case "class_heritage":
			for j := uint(0); j < child.NamedChildCount(); j++ {
				clause := child.NamedChild(j)
				switch clause.Kind() {
				case "extends_clause", "implements_clause":
					bases = append(bases, clauseTypes(clause, src)...)
				default:
					bases = append(bases, nodeText(clause, src))
				}
			}
		case "extends_type_clause", "extends_clause", "implements_clause":
			bases = append(bases, clauseTypes(child, src)...)
		}
	}
	return bases
}

func clauseTypes(clause *sitter.Node, src []byte) []string {
	var types []string
	for i := uint(0); i < clause.NamedChildCount(); i++ {
		types = append(types, nodeText(clause.NamedChild(i), src))
	}
	return types
}
