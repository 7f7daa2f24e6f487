package lang

import (
	kotlin "github.com/tree-sitter-grammars/tree-sitter-kotlin/bindings/go"
	csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
	golang "github.com/tree-sitter/tree-sitter-go/bindings/go"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	php "github.com/tree-sitter/tree-sitter-php/bindings/go"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// languages is the fixed set of supported grammars. Extensions map
// many-to-one; an extension missing here resolves to no grammar and the
// file is reported as unsupported rather than failing the batch.
var languages = map[string]*definition{
	"python": {
		extensions: []string{".py"},
		language:   python.Language,
		rules:      pythonRules,
	},
	"javascript": {
		extensions: []string{".js", ".jsx", ".mjs", ".cjs"},
		language:   javascript.Language,
		rules:      javascriptRules,
	},
	"typescript": {
		extensions: []string{".ts"},
		language:   typescript.LanguageTypescript,
		rules:      typescriptRules,
	},
	"tsx": {
		extensions: []string{".tsx"},
		language:   typescript.LanguageTSX,
		rules:      typescriptRules,
	},
	"java": {
		extensions: []string{".java"},
		language:   java.Language,
		rules:      javaRules,
	},
	"c": {
		extensions: []string{".c", ".h"},
		language:   c.Language,
		rules:      cppRules,
	},
	"cpp": {
		extensions: []string{".cpp", ".cc", ".cxx", ".hpp", ".hh", ".hxx"},
		language:   cpp.Language,
		rules:      cppRules,
	},
	"ruby": {
		extensions: []string{".rb", ".rake"},
		language:   ruby.Language,
		rules:      rubyRules,
	},
	"go": {
		extensions: []string{".go"},
		language:   golang.Language,
		rules:      goRules,
	},
	"rust": {
		extensions: []string{".rs"},
		language:   rust.Language,
		rules:      rustRules,
	},
	"php": {
		extensions: []string{".php"},
		language:   php.LanguagePHP,
		rules:      phpRules,
	},
	"csharp": {
		extensions: []string{".cs"},
		language:   csharp.Language,
		rules:      csharpRules,
	},
	"kotlin": {
		extensions: []string{".kt", ".kts"},
		language:   kotlin.Language,
		rules:      kotlinRules,
	},
}
