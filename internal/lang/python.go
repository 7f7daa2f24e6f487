package lang

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

var pythonRules = &rules{
	classKinds: map[string]bool{
		"class_definition": true,
	},
	funcKinds: map[string]bool{
		"function_definition": true,
	},
	importKinds: map[string]bool{
		"import_statement":        true,
		"import_from_statement":   true,
		"future_import_statement": true,
	},
	skipKinds: map[string]bool{
		"comment": true,
		"string":  true,
	},
	bases: pythonBases,
	flags: pythonFlags,
}

// pythonBases reads the superclass argument list of a class definition:
// identifiers and dotted attributes, as written. Keyword arguments
// (metaclass=...) are not base names.
func pythonBases(n *sitter.Node, src []byte) []string {
	args := n.ChildByFieldName("superclasses")
	if args == nil {
		return nil
	}
	var bases []string
	for i := uint(0); i < args.NamedChildCount(); i++ {
		child := args.NamedChild(i)
		switch child.Kind() {
		case "identifier", "attribute", "subscript":
			bases = append(bases, nodeText(child, src))
		}
	}
	return bases
}

// pythonFlags detects async def and @staticmethod. Python has no access
// modifiers, so visibility stays default.
func pythonFlags(n *sitter.Node, src []byte) funcFlags {
	flags := newFuncFlags()
	for i := uint(0); i < n.ChildCount(); i++ {
		if n.Child(i).Kind() == "async" {
			flags.async = true
			break
		}
	}
	if parent := n.Parent(); parent != nil && parent.Kind() == "decorated_definition" {
		for i := uint(0); i < parent.NamedChildCount(); i++ {
			child := parent.NamedChild(i)
			if child.Kind() == "decorator" && strings.Contains(nodeText(child, src), "staticmethod") {
				flags.static = true
			}
		}
	}
	return flags
}
