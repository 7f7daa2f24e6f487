// Package lang maps file extensions to tree-sitter grammars and extracts the
// language-neutral structural record from parsed trees. Grammars are built
// lazily, once per language, and cached for the process lifetime.
package lang

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unsafe"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Grammar is an immutable handle for one language: the compiled tree-sitter
// language plus the extraction rules for it. Safe to share across goroutines.
type Grammar struct {
	Name     string
	language *sitter.Language
	rules    *rules
}

// Parse parses source with this grammar. Parsing never raises on malformed
// input; a tree containing error nodes is a valid result.
func (g *Grammar) Parse(source []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(g.language); err != nil {
		return nil, fmt.Errorf("set %s language: %w", g.Name, err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("%s grammar produced no tree", g.Name)
	}
	return tree, nil
}

// definition describes how to build a Grammar on first use.
type definition struct {
	extensions []string
	language   func() unsafe.Pointer
	rules      *rules
}

// entry guards one-time construction of a Grammar. Each language has its own
// once so that warming up one grammar never serializes the others.
type entry struct {
	name    string
	def     *definition
	once    sync.Once
	grammar *Grammar
}

// Registry resolves file extensions to cached grammar handles.
type Registry struct {
	byExtension map[string]*entry
}

// NewRegistry creates a registry covering all supported languages. No
// grammar is constructed until its first Resolve call.
func NewRegistry() *Registry {
	byExt := make(map[string]*entry)
	for name, def := range languages {
		e := &entry{name: name, def: def}
		for _, ext := range def.extensions {
			byExt[ext] = e
		}
	}
	return &Registry{byExtension: byExt}
}

// Resolve returns the grammar handle for a file extension (".py", ".rs", ...)
// or nil when the extension has no mapping. Callers must treat nil as an
// unsupported file, not an error for the whole batch.
func (r *Registry) Resolve(ext string) *Grammar {
	e, ok := r.byExtension[strings.ToLower(ext)]
	if !ok {
		return nil
	}
	e.once.Do(func() {
		e.grammar = &Grammar{
			Name:     e.name,
			language: sitter.NewLanguage(e.def.language()),
			rules:    e.def.rules,
		}
	})
	return e.grammar
}

// LanguageForExtension returns the language identifier for an extension, or
// "unknown" when no grammar covers it.
func (r *Registry) LanguageForExtension(ext string) string {
	if e, ok := r.byExtension[strings.ToLower(ext)]; ok {
		return e.name
	}
	return "unknown"
}

// Names returns the supported language identifiers in sorted order.
func Names() []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
