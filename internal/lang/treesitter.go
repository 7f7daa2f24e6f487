package lang

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// nodeText extracts the source text covered by a node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// lineRange returns the 1-based inclusive line span of a node.
func lineRange(node *sitter.Node) (start, end int) {
	return int(node.StartPosition().Row) + 1, int(node.EndPosition().Row) + 1
}

// findChildByKind finds the first direct child with the given kind.
func findChildByKind(node *sitter.Node, kind string) *sitter.Node {
	if node == nil {
		return nil
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

// identifierKinds are the node kinds that carry a plain declared name across
// the supported grammars.
var identifierKinds = map[string]bool{
	"identifier":          true,
	"type_identifier":     true,
	"simple_identifier":   true,
	"field_identifier":    true,
	"property_identifier": true,
	"constant":            true,
	"name":                true,
	"variable_name":       true,
}

// firstIdentifier returns the text of the first identifier-like node found
// in a depth-first walk of the subtree, or "".
func firstIdentifier(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	if identifierKinds[node.Kind()] {
		return nodeText(node, source)
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if name := firstIdentifier(node.Child(i), source); name != "" {
			return name
		}
	}
	return ""
}

// defaultName resolves a declaration's name: the "name" field when the
// grammar provides one, otherwise the first identifier-like direct child.
func defaultName(node *sitter.Node, source []byte) string {
	if c := node.ChildByFieldName("name"); c != nil {
		return nodeText(c, source)
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if identifierKinds[child.Kind()] {
			return nodeText(child, source)
		}
	}
	return ""
}

// paramNodeKinds are kinds tried when a grammar has no "parameters" field.
var paramNodeKinds = []string{
	"formal_parameters",
	"parameters",
	"parameter_list",
	"function_value_parameters",
	"method_parameters",
}

// parametersNode locates the parameter list of a function-like node.
func parametersNode(node *sitter.Node) *sitter.Node {
	if c := node.ChildByFieldName("parameters"); c != nil {
		return c
	}
	for _, kind := range paramNodeKinds {
		if c := findChildByKind(node, kind); c != nil {
			return c
		}
	}
	return nil
}

// defaultParams extracts parameter names in declaration order: for each
// named child of the parameter list, the declared name is its "name" field,
// itself when it is an identifier, or the first identifier inside it.
// Receiver markers (Rust self) are kept; unnamed parameters are skipped.
func defaultParams(node *sitter.Node, source []byte) []string {
	list := parametersNode(node)
	if list == nil {
		return nil
	}
	var params []string
	for i := uint(0); i < list.NamedChildCount(); i++ {
		child := list.NamedChild(i)
		if name := paramName(child, source); name != "" {
			params = append(params, name)
		}
	}
	return params
}

// valueIdentifierKinds name values rather than types; parameter fallbacks
// search these only so that "MyClass x" never yields "MyClass".
var valueIdentifierKinds = map[string]bool{
	"identifier":        true,
	"simple_identifier": true,
	"variable_name":     true,
}

func firstValueIdentifier(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	if valueIdentifierKinds[node.Kind()] {
		return nodeText(node, source)
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if name := firstValueIdentifier(node.Child(i), source); name != "" {
			return name
		}
	}
	return ""
}

func paramName(node *sitter.Node, source []byte) string {
	switch {
	case node.Kind() == "self_parameter" || node.Kind() == "self":
		return "self"
	case identifierKinds[node.Kind()]:
		return nodeText(node, source)
	}
	if c := node.ChildByFieldName("name"); c != nil {
		return nodeText(c, source)
	}
	if c := node.ChildByFieldName("pattern"); c != nil {
		return firstValueIdentifier(c, source)
	}
	if c := node.ChildByFieldName("declarator"); c != nil {
		return firstValueIdentifier(c, source)
	}
	return firstValueIdentifier(node, source)
}

// modifierContainers are wrapper kinds whose children (and own text) are
// inspected for declaration modifiers.
var modifierContainers = map[string]bool{
	"modifiers":          true,
	"modifier":           true,
	"function_modifiers": true,
}

// modifierKinds are leaf kinds whose text is a modifier keyword.
var modifierKinds = map[string]bool{
	"visibility_modifier":    true,
	"accessibility_modifier": true,
	"static_modifier":        true,
	"function_modifier":      true,
	"async":                  true,
	"static":                 true,
}

// defaultFlags scans a declaration's direct children (and one level inside
// modifier wrapper nodes) for async/static/visibility keywords.
func defaultFlags(node *sitter.Node, source []byte) funcFlags {
	flags := newFuncFlags()
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		kind := child.Kind()
		if modifierContainers[kind] {
			applyModifier(&flags, nodeTextWord(child, source))
			for j := uint(0); j < child.ChildCount(); j++ {
				applyModifier(&flags, nodeTextWord(child.Child(j), source))
			}
			continue
		}
		if !child.IsNamed() || modifierKinds[kind] {
			applyModifier(&flags, nodeTextWord(child, source))
		}
	}
	return flags
}

// nodeTextWord returns node text trimmed to its first word, so that tokens
// like "pub(crate)" and "private " normalize cleanly.
func nodeTextWord(node *sitter.Node, source []byte) string {
	text := strings.TrimSpace(nodeText(node, source))
	if idx := strings.IndexAny(text, " \t(\n"); idx > 0 {
		text = text[:idx]
	}
	return text
}

func applyModifier(flags *funcFlags, word string) {
	switch word {
	case "async", "suspend":
		flags.async = true
	case "static":
		flags.static = true
	case "public", "pub":
		flags.visibility = "public"
	case "private":
		flags.visibility = "private"
	case "protected":
		flags.visibility = "protected"
	}
}

// bodyKinds are container kinds tried when a grammar has no "body" field.
var bodyKinds = []string{
	"class_body",
	"declaration_list",
	"field_declaration_list",
	"enum_body",
	"block",
	"body_statement",
}

// bodyNode locates the member container of a class-like node. Returns the
// node itself when no dedicated body exists so the walk still descends.
func bodyNode(node *sitter.Node) *sitter.Node {
	if c := node.ChildByFieldName("body"); c != nil {
		return c
	}
	for _, kind := range bodyKinds {
		if c := findChildByKind(node, kind); c != nil {
			return c
		}
	}
	return node
}
