package mapper

import (
	"fmt"
	"strings"

	"github.com/codemap-dev/codemap/internal/model"
)

// RenderText produces the compact tree rendering of a document: statistics,
// per-file failures, and a class/function tree per file. Files with no
// extracted structure are omitted from the tree but kept in the statistics.
func RenderText(doc *model.Document) string {
	var b strings.Builder

	b.WriteString("=== ANALYSIS STATISTICS ===\n")
	fmt.Fprintf(&b, "Files analyzed: %d\n", doc.Totals.FilesAnalyzed)
	fmt.Fprintf(&b, "Files failed: %d\n", doc.Totals.FilesFailed)
	fmt.Fprintf(&b, "Classes found: %d\n", doc.Totals.Classes)
	fmt.Fprintf(&b, "Functions found: %d\n", doc.Totals.Functions)
	fmt.Fprintf(&b, "Imports found: %d\n", doc.Totals.Imports)

	var failures []model.DocumentFile
	for _, file := range doc.Files {
		if file.ParseStatus == model.ParseFailed {
			failures = append(failures, file)
		}
	}
	if len(failures) > 0 {
		b.WriteString("\n=== ERRORS ===\n")
		for _, file := range failures {
			fmt.Fprintf(&b, "%s: %s\n", file.Path, file.Reason)
		}
	}

	b.WriteString("\n=== REPOSITORY STRUCTURE ===\n")
	wrote := false
	for _, file := range doc.Files {
		if len(file.Classes) == 0 && len(file.Functions) == 0 {
			continue
		}
		wrote = true
		fmt.Fprintf(&b, "\n%s\n", file.Path)
		writeFileTree(&b, file)
	}
	if !wrote {
		b.WriteString("No significant code structure found.\n")
	}
	return b.String()
}

func writeFileTree(b *strings.Builder, file model.DocumentFile) {
	total := len(file.Classes) + len(file.Functions)
	i := 0
	for _, cls := range file.Classes {
		i++
		last := i == total
		fmt.Fprintf(b, "%sclass %s%s\n", branch(last), cls.Name, baseSuffix(cls.BaseNames))
		for j, method := range cls.Methods {
			fmt.Fprintf(b, "%s%s%s\n", indent(last), branch(j == len(cls.Methods)-1), signature(method))
		}
	}
	for _, fn := range file.Functions {
		i++
		fmt.Fprintf(b, "%s%s\n", branch(i == total), signature(fn))
	}
}

func signature(fn model.FunctionEntity) string {
	return fmt.Sprintf("%s(%s)", fn.Name, strings.Join(fn.Parameters, ", "))
}

func baseSuffix(bases []string) string {
	if len(bases) == 0 {
		return ""
	}
	return " : " + strings.Join(bases, ", ")
}

func branch(last bool) string {
	if last {
		return "└── "
	}
	return "├── "
}

func indent(last bool) string {
	if last {
		return "    "
	}
	return "│   "
}
