package lang

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codemap-dev/codemap/internal/model"
)

// rustRules treat structs, enums and traits as class-like. Methods live in
// impl blocks and attach to the target type's entity; "impl Trait for Type"
// records Trait as a base name, which is Rust's implements edge.
var rustRules = &rules{
	classKinds: map[string]bool{
		"struct_item": true,
		"enum_item":   true,
		"trait_item":  true,
	},
	funcKinds: map[string]bool{
		"function_item":           true,
		"function_signature_item": true,
	},
	importKinds: map[string]bool{
		"use_declaration": true,
	},
	skipKinds: map[string]bool{
		"line_comment":       true,
		"block_comment":      true,
		"string_literal":     true,
		"raw_string_literal": true,
	},
	flags: rustFlags,
	attach: map[string]attachFunc{
		"impl_item": rustImpl,
	},
}

func rustFlags(n *sitter.Node, src []byte) funcFlags {
	flags := newFuncFlags()
	flags.visibility = model.VisibilityPrivate
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		switch child.Kind() {
		case "visibility_modifier":
			flags.visibility = model.VisibilityPublic
		case "function_modifiers":
			if strings.Contains(nodeText(child, src), "async") {
				flags.async = true
			}
		}
		if !child.IsNamed() && nodeText(child, src) == "async" {
			flags.async = true
		}
	}
	return flags
}

// rustImpl folds an impl block into the target type's entity.
func rustImpl(x *extraction, n *sitter.Node, owner *model.ClassEntity, stack []string) {
	target := n.ChildByFieldName("type")
	if target == nil {
		return
	}
	name := nodeText(target, x.src)
	if idx := strings.Index(name, "<"); idx > 0 {
		name = name[:idx]
	}
	cls := x.classFor(name, n)

	if trait := n.ChildByFieldName("trait"); trait != nil {
		cls.BaseNames = append(cls.BaseNames, nodeText(trait, x.src))
	}

	if body := n.ChildByFieldName("body"); body != nil {
		for i := uint(0); i < body.ChildCount(); i++ {
			x.walk(body.Child(i), cls, stack)
		}
	}
}
