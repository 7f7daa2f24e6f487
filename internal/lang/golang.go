package lang

import (
	"strings"
	"unicode"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codemap-dev/codemap/internal/model"
)

// goRules treat struct and interface types as class-like; receiver methods
// declared anywhere in the file attach to the type's entity. Go has no
// inheritance clause, so base_names stay empty.
var goRules = &rules{
	classKinds: map[string]bool{
		"type_spec": true,
	},
	funcKinds: map[string]bool{
		"function_declaration": true,
		"method_elem":          true,
		"method_spec":          true,
	},
	importKinds: map[string]bool{
		"import_spec": true,
	},
	skipKinds: map[string]bool{
		"comment":                    true,
		"interpreted_string_literal": true,
		"raw_string_literal":         true,
	},
	classOK: func(n *sitter.Node) bool {
		t := n.ChildByFieldName("type")
		if t == nil {
			return false
		}
		switch t.Kind() {
		case "struct_type", "interface_type":
			return true
		}
		return false
	},
	params: goParams,
	flags:  goFlags,
	attach: map[string]attachFunc{
		"method_declaration": goMethod,
	},
}

// goParams collects every name of each parameter declaration ("a, b int"
// yields both a and b).
func goParams(n *sitter.Node, src []byte) []string {
	list := parametersNode(n)
	if list == nil {
		return nil
	}
	var params []string
	for i := uint(0); i < list.NamedChildCount(); i++ {
		decl := list.NamedChild(i)
		for j := uint(0); j < decl.ChildCount(); j++ {
			child := decl.Child(j)
			if child.Kind() == "identifier" {
				params = append(params, nodeText(child, src))
			}
		}
	}
	return params
}

// goFlags maps exported/unexported names onto visibility.
func goFlags(n *sitter.Node, src []byte) funcFlags {
	flags := newFuncFlags()
	name := defaultName(n, src)
	if name == "" {
		return flags
	}
	if unicode.IsUpper(rune(name[0])) {
		flags.visibility = model.VisibilityPublic
	} else {
		flags.visibility = model.VisibilityPrivate
	}
	return flags
}

// goMethod attaches a receiver method to its type's entity, creating the
// entity when the type is declared in another file.
func goMethod(x *extraction, n *sitter.Node, owner *model.ClassEntity, stack []string) {
	fe, ok := x.function(n)
	if !ok {
		return
	}
	recv := goReceiverType(n, x.src)
	if recv == "" {
		x.funcs = append(x.funcs, fe)
		return
	}
	cls := x.classFor(recv, n)
	cls.Methods = append(cls.Methods, fe)
}

// goReceiverType resolves the bare type name of a method receiver,
// stripping pointers and type parameters.
func goReceiverType(n *sitter.Node, src []byte) string {
	recv := n.ChildByFieldName("receiver")
	if recv == nil {
		return ""
	}
	for i := uint(0); i < recv.NamedChildCount(); i++ {
		decl := recv.NamedChild(i)
		t := decl.ChildByFieldName("type")
		if t == nil {
			continue
		}
		text := nodeText(t, src)
		text = strings.TrimLeft(text, "*")
		if idx := strings.IndexAny(text, "["); idx > 0 {
			text = text[:idx]
		}
		return text
	}
	return ""
}
