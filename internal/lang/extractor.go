package lang

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codemap-dev/codemap/internal/model"
)

// rules is the per-language mapping from syntax-node shapes to the three
// output categories. The extractor is one generic walk over this table;
// adding a language means adding a table entry, not a new algorithm.
type rules struct {
	classKinds map[string]bool
	funcKinds  map[string]bool
	// methodKinds are function-like only inside a class body. Outside one
	// (object literals, type literals) they are skipped without descent so
	// expression members never surface as module-level functions.
	methodKinds map[string]bool
	importKinds map[string]bool
	// skipKinds are never descended into (comments, strings), preventing
	// false positives from keywords inside literals.
	skipKinds map[string]bool

	// Optional hooks; nil means the generic default applies.
	classOK   func(n *sitter.Node) bool
	className func(n *sitter.Node, src []byte) string
	funcName  func(n *sitter.Node, src []byte) string
	bases     func(n *sitter.Node, src []byte) []string
	params    func(n *sitter.Node, src []byte) []string
	flags     func(n *sitter.Node, src []byte) funcFlags
	qualOwner func(name string) (owner, method string, ok bool)

	// attach handles constructs that contribute methods or bases to a class
	// entity declared elsewhere in the file (Go receivers, Rust impl blocks,
	// Ruby require calls).
	attach map[string]attachFunc
}

type attachFunc func(x *extraction, n *sitter.Node, owner *model.ClassEntity, stack []string)

type funcFlags struct {
	async      bool
	static     bool
	visibility string
}

func newFuncFlags() funcFlags {
	return funcFlags{visibility: model.VisibilityDefault}
}

// extraction is the per-file walk state.
type extraction struct {
	src     []byte
	rules   *rules
	classes []*model.ClassEntity
	byName  map[string]*model.ClassEntity
	funcs   []model.FunctionEntity
	imports []string
}

// Extract walks a parsed tree and returns the structural record for it.
// Trees containing error nodes are valid input: error regions are skipped
// and everything salvageable around them is kept, in source order.
func (g *Grammar) Extract(tree *sitter.Tree, source []byte) model.FileStructure {
	x := &extraction{
		src:    source,
		rules:  g.rules,
		byName: make(map[string]*model.ClassEntity),
	}
	x.walk(tree.RootNode(), nil, nil)

	out := model.FileStructure{
		Classes:   make([]model.ClassEntity, 0, len(x.classes)),
		Functions: x.funcs,
		Imports:   x.imports,
	}
	for _, c := range x.classes {
		if c.Methods == nil {
			c.Methods = []model.FunctionEntity{}
		}
		out.Classes = append(out.Classes, *c)
	}
	if out.Functions == nil {
		out.Functions = []model.FunctionEntity{}
	}
	if out.Imports == nil {
		out.Imports = []string{}
	}
	return out
}

func (x *extraction) walk(n *sitter.Node, owner *model.ClassEntity, stack []string) {
	if n == nil || n.IsError() || n.IsMissing() {
		return
	}
	kind := n.Kind()
	if x.rules.skipKinds[kind] {
		return
	}
	if x.rules.importKinds[kind] {
		x.imports = append(x.imports, strings.TrimSpace(nodeText(n, x.src)))
		return
	}
	if fn, ok := x.rules.attach[kind]; ok {
		fn(x, n, owner, stack)
		return
	}
	if x.rules.classKinds[kind] && (x.rules.classOK == nil || x.rules.classOK(n)) {
		x.enterClass(n, stack)
		return
	}
	if x.rules.funcKinds[kind] {
		x.enterFunction(n, owner)
		return
	}
	if x.rules.methodKinds[kind] {
		if owner != nil {
			x.enterFunction(n, owner)
		}
		return
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		x.walk(n.Child(i), owner, stack)
	}
}

// enterClass records a class-like node and walks its body for methods and
// nested classes. Nested classes become separate top-level entities with a
// qualified name; they never land in the outer class's method list.
func (x *extraction) enterClass(n *sitter.Node, stack []string) {
	name := x.className(n)
	if name == "" {
		return
	}
	qualified := name
	if len(stack) > 0 {
		qualified = strings.Join(stack, ".") + "." + name
	}

	start, end := lineRange(n)
	cls, ok := x.byName[qualified]
	if ok {
		// Methods attached before the declaration itself (Go receivers,
		// Rust impl blocks, C++ out-of-line members) pre-create the
		// entity; adopt it instead of emitting a duplicate.
		if start < cls.LineStart {
			cls.LineStart = start
		}
		if end > cls.LineEnd {
			cls.LineEnd = end
		}
	} else {
		cls = &model.ClassEntity{
			Name:      qualified,
			BaseNames: []string{},
			LineStart: start,
			LineEnd:   end,
		}
		x.classes = append(x.classes, cls)
		x.byName[qualified] = cls
	}
	if x.rules.bases != nil {
		if bases := x.rules.bases(n, x.src); len(bases) > 0 {
			cls.BaseNames = append(cls.BaseNames, bases...)
		}
	}

	body := bodyNode(n)
	childStack := append(append([]string{}, stack...), name)
	for i := uint(0); i < body.ChildCount(); i++ {
		x.walk(body.Child(i), cls, childStack)
	}
}

// enterFunction records a function-like node as a method of owner or a
// module-level function. Function bodies are not descended into: structural
// mapping targets named, top-level-visible constructs only.
func (x *extraction) enterFunction(n *sitter.Node, owner *model.ClassEntity) {
	fe, ok := x.function(n)
	if !ok {
		return
	}
	if owner != nil {
		owner.Methods = append(owner.Methods, fe)
		return
	}
	if x.rules.qualOwner != nil {
		if ownerName, method, ok := x.rules.qualOwner(fe.Name); ok {
			cls := x.classFor(ownerName, n)
			fe.Name = method
			cls.Methods = append(cls.Methods, fe)
			return
		}
	}
	x.funcs = append(x.funcs, fe)
}

// function builds a FunctionEntity from a function-like node. Nodes without
// a resolvable name (anonymous constructs) are excluded from the model.
func (x *extraction) function(n *sitter.Node) (model.FunctionEntity, bool) {
	name := x.funcName(n)
	if name == "" {
		return model.FunctionEntity{}, false
	}
	start, end := lineRange(n)

	params := defaultParams(n, x.src)
	if x.rules.params != nil {
		params = x.rules.params(n, x.src)
	}
	if params == nil {
		params = []string{}
	}

	flags := defaultFlags(n, x.src)
	if x.rules.flags != nil {
		flags = x.rules.flags(n, x.src)
	}

	return model.FunctionEntity{
		Name:       name,
		Parameters: params,
		LineStart:  start,
		LineEnd:    end,
		IsAsync:    flags.async,
		IsStatic:   flags.static,
		Visibility: flags.visibility,
	}, true
}

func (x *extraction) className(n *sitter.Node) string {
	if x.rules.className != nil {
		return x.rules.className(n, x.src)
	}
	return defaultName(n, x.src)
}

func (x *extraction) funcName(n *sitter.Node) string {
	if x.rules.funcName != nil {
		return x.rules.funcName(n, x.src)
	}
	return defaultName(n, x.src)
}

// classFor returns the class entity with the given name, creating one from
// the current node's position when the file does not declare the type
// itself (Go receiver methods, Rust impl blocks for external types).
func (x *extraction) classFor(name string, n *sitter.Node) *model.ClassEntity {
	if cls, ok := x.byName[name]; ok {
		if _, end := lineRange(n); end > cls.LineEnd {
			cls.LineEnd = end
		}
		return cls
	}
	start, end := lineRange(n)
	cls := &model.ClassEntity{
		Name:      name,
		BaseNames: []string{},
		LineStart: start,
		LineEnd:   end,
	}
	x.classes = append(x.classes, cls)
	x.byName[name] = cls
	return cls
}
