package mapper

import (
	"sort"

	"github.com/codemap-dev/codemap/internal/model"
)

// LargestFilesLimit bounds the top-N-by-line-count list.
const LargestFilesLimit = 10

// Report accumulates per-file records for one mapping run. It is not safe
// for concurrent use; Run folds completed files from a single consumer.
type Report struct {
	Root    string
	order   []string
	files   map[string]model.SourceFile
	largest *topFiles
}

// NewReport creates an empty report for one invocation.
func NewReport(root string) *Report {
	return &Report{
		Root:    root,
		files:   make(map[string]model.SourceFile),
		largest: newTopFiles(LargestFilesLimit),
	}
}

// Fold adds one completed file to the report. Folding is idempotent per
// path: refolding the same path overwrites the previous record instead of
// double-counting, so a caller may retry a single file without restarting
// the batch.
func (r *Report) Fold(file model.SourceFile) {
	if _, seen := r.files[file.Path]; !seen {
		r.order = append(r.order, file.Path)
	}
	r.files[file.Path] = file
	r.largest.insert(file.Path, file.LineCount)
}

// Len returns the number of folded files.
func (r *Report) Len() int {
	return len(r.order)
}

// Files returns the folded records sorted by path. Folding happens in
// completion order under concurrency; sorting here is what keeps repeated
// runs over the same tree byte-identical.
func (r *Report) Files() []model.SourceFile {
	paths := make([]string, len(r.order))
	copy(paths, r.order)
	sort.Strings(paths)
	files := make([]model.SourceFile, 0, len(paths))
	for _, path := range paths {
		files = append(files, r.files[path])
	}
	return files
}

// Totals computes the aggregate counters. Failed files contribute to
// files_failed only; they never appear in by_language.
func (r *Report) Totals() model.Totals {
	totals := model.Totals{ByLanguage: make(map[string]int)}
	for _, path := range r.order {
		file := r.files[path]
		if file.Status == model.ParseFailed {
			totals.FilesFailed++
			continue
		}
		totals.FilesAnalyzed++
		totals.ByLanguage[file.Language]++
		totals.Classes += len(file.Classes)
		totals.Functions += len(file.Functions)
		totals.Imports += len(file.Imports)
		for _, cls := range file.Classes {
			totals.Functions += len(cls.Methods)
		}
	}
	return totals
}

// Largest returns the top-N files by line count, descending, ties broken by
// ascending path.
func (r *Report) Largest() []model.LargestFile {
	return r.largest.entries()
}

// topFiles is a bounded top-N structure: inserts are O(N) against the
// bound, not against the file count, and re-inserting a path replaces its
// previous entry so refolds stay idempotent.
type topFiles struct {
	limit int
	items []model.LargestFile
}

func newTopFiles(limit int) *topFiles {
	return &topFiles{limit: limit}
}

func (t *topFiles) insert(path string, lineCount int) {
	for i, item := range t.items {
		if item.Path == path {
			t.items = append(t.items[:i], t.items[i+1:]...)
			break
		}
	}
	t.items = append(t.items, model.LargestFile{Path: path, LineCount: lineCount})
	sort.Slice(t.items, func(i, j int) bool {
		if t.items[i].LineCount != t.items[j].LineCount {
			return t.items[i].LineCount > t.items[j].LineCount
		}
		return t.items[i].Path < t.items[j].Path
	})
	if len(t.items) > t.limit {
		t.items = t.items[:t.limit]
	}
}

func (t *topFiles) entries() []model.LargestFile {
	out := make([]model.LargestFile, len(t.items))
	copy(out, t.items)
	return out
}
