package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codemap-dev/codemap/internal/model"
)

var rubyRules = &rules{
	classKinds: map[string]bool{
		"class":  true,
		"module": true,
	},
	funcKinds: map[string]bool{
		"method":           true,
		"singleton_method": true,
	},
	importKinds: map[string]bool{},
	skipKinds: map[string]bool{
		"comment":      true,
		"string":       true,
		"heredoc_body": true,
	},
	bases: rubyBases,
	attach: map[string]attachFunc{
		"call": rubyCall,
	},
}

// rubyBases reads the superclass clause ("class A < B").
func rubyBases(n *sitter.Node, src []byte) []string {
	clause := n.ChildByFieldName("superclass")
	if clause == nil {
		return nil
	}
	for i := uint(0); i < clause.NamedChildCount(); i++ {
		return []string{nodeText(clause.NamedChild(i), src)}
	}
	return nil
}

// rubyCall captures require statements as imports. Other calls (DSL blocks)
// are descended into because they commonly wrap method definitions.
func rubyCall(x *extraction, n *sitter.Node, owner *model.ClassEntity, stack []string) {
	if method := n.ChildByFieldName("method"); method != nil {
		switch nodeText(method, x.src) {
		case "require", "require_relative", "load":
			x.imports = append(x.imports, nodeText(n, x.src))
			return
		}
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		x.walk(n.Child(i), owner, stack)
	}
}
