package mapper

import (
	"encoding/json"
	"fmt"

	"github.com/codemap-dev/codemap/internal/model"
)

// BuildDocument is a pure transform from the frozen report to the external
// document. All validation happens earlier in the pipeline; nothing here
// can fail. Output is deterministic for identical input: files are sorted
// by path and encoding/json sorts the language map keys.
func BuildDocument(report *Report) *model.Document {
	files := report.Files()
	doc := &model.Document{
		Root:         report.Root,
		Files:        make([]model.DocumentFile, 0, len(files)),
		Totals:       report.Totals(),
		LargestFiles: report.Largest(),
	}
	for _, file := range files {
		doc.Files = append(doc.Files, model.DocumentFile{
			Path:        file.Path,
			Language:    file.Language,
			ParseStatus: file.Status,
			Reason:      file.Reason,
			LineCount:   file.LineCount,
			SizeBytes:   file.SizeBytes,
			Classes:     file.Classes,
			Functions:   file.Functions,
			Imports:     file.Imports,
		})
	}
	return doc
}

// EncodeJSON renders a document as indented JSON.
func EncodeJSON(doc *model.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return append(data, '\n'), nil
}
