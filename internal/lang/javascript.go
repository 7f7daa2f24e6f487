package lang

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

var javascriptRules = &rules{
	classKinds: map[string]bool{
		"class_declaration": true,
	},
	funcKinds: map[string]bool{
		"function_declaration":           true,
		"generator_function_declaration": true,
	},
	methodKinds: map[string]bool{
		"method_definition": true,
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
	bases: jsBases,
	flags: jsFlags,
}

// jsBases reads the extends clause. The heritage expression is kept verbatim
// (a superclass can be any expression, e.g. mixin(Base)).
func jsBases(n *sitter.Node, src []byte) []string {
	heritage := findChildByKind(n, "class_heritage")
	if heritage == nil {
		return nil
	}
	var bases []string
	for i := uint(0); i < heritage.NamedChildCount(); i++ {
		bases = append(bases, nodeText(heritage.NamedChild(i), src))
	}
	if len(bases) == 0 {
		if text := strings.TrimSpace(strings.TrimPrefix(nodeText(heritage, src), "extends")); text != "" {
			bases = append(bases, text)
		}
	}
	return bases
}

// jsFlags: async/static tokens plus #private method names.
func jsFlags(n *sitter.Node, src []byte) funcFlags {
	flags := defaultFlags(n, src)
	if name := n.ChildByFieldName("name"); name != nil {
		if name.Kind() == "private_property_identifier" || strings.HasPrefix(nodeText(name, src), "#") {
			flags.visibility = "private"
		}
	}
	return flags
}
