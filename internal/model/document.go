package model

// Document is the externally exposed report, serialized as JSON for the CLI
// and MCP surfaces. Field layout matches what downstream agents consume.
type Document struct {
	Root         string         `json:"root"`
	Files        []DocumentFile `json:"files"`
	Totals       Totals         `json:"totals"`
	LargestFiles []LargestFile  `json:"largest_files"`
}

// DocumentFile is the per-file section of a Document.
type DocumentFile struct {
	Path        string           `json:"path"`
	Language    string           `json:"language"`
	ParseStatus ParseStatus      `json:"parse_status"`
	Reason      string           `json:"reason,omitempty"`
	LineCount   int              `json:"line_count"`
	SizeBytes   int              `json:"size_bytes"`
	Classes     []ClassEntity    `json:"classes"`
	Functions   []FunctionEntity `json:"functions"`
	Imports     []string         `json:"imports"`
}

// Totals holds the aggregate counters for one report.
type Totals struct {
	FilesAnalyzed int            `json:"files_analyzed"`
	FilesFailed   int            `json:"files_failed"`
	Classes       int            `json:"classes"`
	Functions     int            `json:"functions"`
	Imports       int            `json:"imports"`
	ByLanguage    map[string]int `json:"by_language"`
}

// LargestFile is one entry of the top-N-by-line-count list.
type LargestFile struct {
	Path      string `json:"path"`
	LineCount int    `json:"line_count"`
}
