package lang

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// cppRules cover C++ and, via shared node kinds, C (.c/.h route to the C
// grammar but the same rules apply; C simply never produces class nodes
// with bodies beyond plain structs).
var cppRules = &rules{
	classKinds: map[string]bool{
		"class_specifier":  true,
		"struct_specifier": true,
	},
	funcKinds: map[string]bool{
		"function_definition": true,
	},
	importKinds: map[string]bool{
		"preproc_include": true,
	},
	skipKinds: map[string]bool{
		"comment":            true,
		"string_literal":     true,
		"raw_string_literal": true,
		"char_literal":       true,
	},
	// Forward declarations ("class Foo;") and struct-typed declarations
	// carry no body and are not definitions.
	classOK: func(n *sitter.Node) bool {
		return n.ChildByFieldName("body") != nil
	},
	funcName:  cppFuncName,
	bases:     cppBases,
	params:    cppParams,
	qualOwner: cppQualifiedOwner,
}

// cppFuncName digs through declarator wrappers (pointers, references) to the
// declared function name, qualified names included.
func cppFuncName(n *sitter.Node, src []byte) string {
	decl := n.ChildByFieldName("declarator")
	for decl != nil {
		switch decl.Kind() {
		case "pointer_declarator", "reference_declarator", "parenthesized_declarator":
			decl = decl.ChildByFieldName("declarator")
		case "function_declarator":
			inner := decl.ChildByFieldName("declarator")
			if inner == nil {
				return ""
			}
			return nodeText(inner, src)
		default:
			return nodeText(decl, src)
		}
	}
	return ""
}

// cppBases reads the base-class clause, skipping access specifiers.
func cppBases(n *sitter.Node, src []byte) []string {
	clause := findChildByKind(n, "base_class_clause")
	if clause == nil {
		return nil
	}
	var bases []string
	for i := uint(0); i < clause.NamedChildCount(); i++ {
		child := clause.NamedChild(i)
		switch child.Kind() {
		case "access_specifier", "virtual":
			continue
		default:
			bases = append(bases, nodeText(child, src))
		}
	}
	return bases
}

// cppParams walks the function declarator's parameter list; abstract
// (unnamed) parameters are skipped.
func cppParams(n *sitter.Node, src []byte) []string {
	decl := n.ChildByFieldName("declarator")
	for decl != nil && decl.Kind() != "function_declarator" {
		decl = decl.ChildByFieldName("declarator")
	}
	if decl == nil {
		return nil
	}
	list := decl.ChildByFieldName("parameters")
	if list == nil {
		return nil
	}
	var params []string
	for i := uint(0); i < list.NamedChildCount(); i++ {
		child := list.NamedChild(i)
		if child.Kind() != "parameter_declaration" && child.Kind() != "optional_parameter_declaration" {
			continue
		}
		if name := firstValueIdentifier(child.ChildByFieldName("declarator"), src); name != "" {
			params = append(params, name)
		}
	}
	return params
}

// cppQualifiedOwner attaches out-of-line member definitions
// ("void Foo::bar()") to the Foo entity instead of module scope.
func cppQualifiedOwner(name string) (string, string, bool) {
	idx := strings.LastIndex(name, "::")
	if idx <= 0 {
		return "", "", false
	}
	return name[:idx], name[idx+2:], true
}
