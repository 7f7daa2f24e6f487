package mapper

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemap-dev/codemap/internal/lang"
	"github.com/codemap-dev/codemap/internal/model"
)

// Test Plan for the per-file analysis pipeline:
// - Supported files parse and extract structure with status ok
// - Unsupported extensions fail with a reason, size and lines still recorded
// - Invalid UTF-8 fails with a decode error
// - Files above the size ceiling fail, and a zero ceiling disables the check
// - Syntax errors downgrade to partial while keeping salvageable structure
// - Unreadable files record the read error as the failure reason
// - Failed files always carry empty (non-nil) entity slices
// - Line counting matches editor conventions

func newTestAnalyzer(maxFileSize int) *Analyzer {
	return NewAnalyzer(lang.NewRegistry(), maxFileSize)
}

func TestAnalyze_SupportedFile(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer(0)
	file := a.Analyze("pkg/models.py", []byte("class A(B):\n    def f(self, x):\n        return x\n"))

	assert.Equal(t, "pkg/models.py", file.Path)
	assert.Equal(t, "python", file.Language)
	assert.Equal(t, model.ParseOK, file.Status)
	assert.Empty(t, file.Reason)
	assert.Equal(t, 3, file.LineCount)

	require.Len(t, file.Classes, 1)
	assert.Equal(t, "A", file.Classes[0].Name)
	assert.Equal(t, []string{"B"}, file.Classes[0].BaseNames)
	require.Len(t, file.Classes[0].Methods, 1)
	assert.Equal(t, []string{"self", "x"}, file.Classes[0].Methods[0].Parameters)
}

func TestAnalyze_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer(0)
	file := a.Analyze("data/blob.xyz", []byte("whatever\ncontent\n"))

	assert.Equal(t, model.ParseFailed, file.Status)
	assert.Equal(t, ReasonUnsupportedExtension, file.Reason)
	assert.Equal(t, "unknown", file.Language)

	// Size and lines are recorded even for failed files.
	assert.Equal(t, 2, file.LineCount)
	assert.Equal(t, len("whatever\ncontent\n"), file.SizeBytes)

	// Failed files carry empty, non-nil entity slices.
	assert.NotNil(t, file.Classes)
	assert.NotNil(t, file.Functions)
	assert.NotNil(t, file.Imports)
	assert.Empty(t, file.Classes)
}

func TestAnalyze_InvalidUTF8(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer(0)
	file := a.Analyze("bad.py", []byte{0xff, 0xfe, 'd', 'e', 'f'})

	assert.Equal(t, model.ParseFailed, file.Status)
	assert.Equal(t, ReasonDecodeError, file.Reason)
}

func TestAnalyze_SizeLimit(t *testing.T) {
	t.Parallel()

	source := []byte("def f():\n    pass\n")

	limited := newTestAnalyzer(4)
	file := limited.Analyze("big.py", source)
	assert.Equal(t, model.ParseFailed, file.Status)
	assert.Equal(t, ReasonSizeLimit, file.Reason)

	// Zero disables the ceiling.
	unlimited := newTestAnalyzer(0)
	file = unlimited.Analyze("big.py", source)
	assert.Equal(t, model.ParseOK, file.Status)
}

func TestAnalyze_SyntaxErrorIsPartial(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer(0)
	source := `class Good {
  ok(x) {}
}

class Broken {
  missing(
`
	file := a.Analyze("broken.js", []byte(source))

	assert.Equal(t, model.ParsePartial, file.Status)

	// The intact class survives the syntax error further down.
	var names []string
	for _, c := range file.Classes {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "Good")
}

func TestUnreadable(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer(0)
	file := a.Unreadable("gone.py", errors.New("open gone.py: permission denied"))

	assert.Equal(t, model.ParseFailed, file.Status)
	assert.Contains(t, file.Reason, "permission denied")
	assert.Equal(t, "python", file.Language)
	assert.NotNil(t, file.Classes)
}

func TestCountLines(t *testing.T) {
	t.Parallel()

	cases := []struct {
		source string
		want   int
	}{
		{"", 0},
		{"one line", 1},
		{"one line\n", 1},
		{"a\nb", 2},
		{"a\nb\n", 2},
		{strings.Repeat("x\n", 100), 100},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, countLines([]byte(tc.source)), "source %q", tc.source)
	}
}
