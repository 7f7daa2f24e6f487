// Package mapper runs the per-file analysis pipeline and folds the results
// into a single structural report.
package mapper

import (
	"bytes"
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/codemap-dev/codemap/internal/lang"
	"github.com/codemap-dev/codemap/internal/model"
)

// Failure reasons recorded on SourceFile.Reason. Per-file failures never
// abort the batch.
const (
	ReasonUnsupportedExtension = "unsupported extension"
	ReasonDecodeError          = "decode error"
	ReasonSizeLimit            = "file exceeds size limit"
)

// Analyzer turns one file's raw bytes into a SourceFile record.
type Analyzer struct {
	registry *lang.Registry
	// maxFileSize is the capacity ceiling in bytes; 0 disables the check.
	maxFileSize int
}

// NewAnalyzer creates an analyzer backed by a shared grammar registry.
func NewAnalyzer(registry *lang.Registry, maxFileSize int) *Analyzer {
	return &Analyzer{registry: registry, maxFileSize: maxFileSize}
}

// Analyze maps one file. It never returns an error: every failure mode is
// captured in the record's parse status and reason so that one bad file
// cannot invalidate the report for the rest of the batch. Size and line
// count are recorded regardless of parse success.
func (a *Analyzer) Analyze(path string, source []byte) model.SourceFile {
	file := model.SourceFile{
		Path:      filepath.ToSlash(path),
		Language:  a.registry.LanguageForExtension(filepath.Ext(path)),
		SizeBytes: len(source),
		LineCount: countLines(source),
		Classes:   []model.ClassEntity{},
		Functions: []model.FunctionEntity{},
		Imports:   []string{},
	}

	grammar := a.registry.Resolve(filepath.Ext(path))
	if grammar == nil {
		file.Status = model.ParseFailed
		file.Reason = ReasonUnsupportedExtension
		return file
	}

	if a.maxFileSize > 0 && len(source) > a.maxFileSize {
		file.Status = model.ParseFailed
		file.Reason = ReasonSizeLimit
		return file
	}

	if !utf8.Valid(source) {
		file.Status = model.ParseFailed
		file.Reason = ReasonDecodeError
		return file
	}

	structure, hadErrors, err := extract(grammar, source)
	if err != nil {
		file.Status = model.ParseFailed
		file.Reason = err.Error()
		return file
	}

	file.Status = model.ParseOK
	if hadErrors {
		file.Status = model.ParsePartial
	}
	file.Classes = structure.Classes
	file.Functions = structure.Functions
	file.Imports = structure.Imports
	return file
}

// Unreadable records a file whose bytes could not be loaded at all.
func (a *Analyzer) Unreadable(path string, readErr error) model.SourceFile {
	return model.SourceFile{
		Path:      filepath.ToSlash(path),
		Language:  a.registry.LanguageForExtension(filepath.Ext(path)),
		Status:    model.ParseFailed,
		Reason:    readErr.Error(),
		Classes:   []model.ClassEntity{},
		Functions: []model.FunctionEntity{},
		Imports:   []string{},
	}
}

// extract parses and extracts behind a recover boundary: a panicking
// extraction rule downgrades the file instead of crashing the batch.
func extract(grammar *lang.Grammar, source []byte) (structure model.FileStructure, hadErrors bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extraction failed: %v", r)
		}
	}()

	tree, err := grammar.Parse(source)
	if err != nil {
		return model.FileStructure{}, false, err
	}
	defer tree.Close()

	hadErrors = tree.RootNode().HasError()
	structure = grammar.Extract(tree, source)
	return structure, hadErrors, nil
}

// countLines counts lines the way editors do: a trailing newline does not
// start an extra line, and an empty file has zero lines.
func countLines(source []byte) int {
	if len(source) == 0 {
		return 0
	}
	n := bytes.Count(source, []byte{'\n'})
	if source[len(source)-1] != '\n' {
		n++
	}
	return n
}
