// Package model defines the language-neutral structural records produced by
// the extractor and the aggregate report built from them.
package model

// ParseStatus describes how far analysis of a single file got.
type ParseStatus string

const (
	// ParseOK means the grammar produced a tree without error nodes.
	ParseOK ParseStatus = "ok"
	// ParsePartial means the tree contains error nodes; extraction ran on
	// the salvageable regions.
	ParsePartial ParseStatus = "partial"
	// ParseFailed means the file was not analyzed (no grammar, undecodable
	// bytes, size ceiling, or an extraction failure).
	ParseFailed ParseStatus = "failed"
)

// Visibility values for FunctionEntity. Languages without an access concept
// use VisibilityDefault.
const (
	VisibilityDefault   = "default"
	VisibilityPublic    = "public"
	VisibilityPrivate   = "private"
	VisibilityProtected = "protected"
)

// FunctionEntity is a named function-like construct: a module-level function
// or a method owned by a class. Anonymous functions are not modeled.
type FunctionEntity struct {
	Name       string   `json:"name"`
	Parameters []string `json:"parameters"`
	LineStart  int      `json:"line_start"`
	LineEnd    int      `json:"line_end"`
	IsAsync    bool     `json:"is_async"`
	IsStatic   bool     `json:"is_static"`
	Visibility string   `json:"visibility"`
}

// ClassEntity is a class-like construct: a class, an interface, a trait, or
// a struct that owns methods. Nested classes appear as separate top-level
// entities with a qualified name (Outer.Inner).
type ClassEntity struct {
	Name      string           `json:"name"`
	BaseNames []string         `json:"base_names"`
	LineStart int              `json:"line_start"`
	LineEnd   int              `json:"line_end"`
	Methods   []FunctionEntity `json:"methods"`
}

// FileStructure is the extractor's output for one parsed file.
type FileStructure struct {
	Classes   []ClassEntity
	Functions []FunctionEntity
	Imports   []string
}

// SourceFile is the complete analysis record for one file.
//
// Invariant: Status == ParseFailed implies Classes, Functions and Imports
// are empty and Reason is non-empty.
type SourceFile struct {
	Path      string
	Language  string
	SizeBytes int
	LineCount int
	Status    ParseStatus
	Reason    string
	Classes   []ClassEntity
	Functions []FunctionEntity
	Imports   []string
}
