package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemap-dev/codemap/internal/config"
	"github.com/codemap-dev/codemap/internal/mapper"
)

// Test Plan for the MCP tool backend:
// - mapDirectory runs a full scan-and-analyze pass over a real tree
// - Config scan settings (ignore globs) apply to tool calls
// - Both output formats render from the same report
// - Server construction requires a configuration

func TestMapDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ignored"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.py"),
		[]byte("class A(B):\n    def f(self, x):\n        return x\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blob.xyz"),
		[]byte("binary-ish\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored", "skip.py"),
		[]byte("def hidden():\n    pass\n"), 0644))

	cfg := config.Default()
	cfg.Scan.Ignore = []string{"ignored/**"}

	report, err := mapDirectory(context.Background(), cfg, dir)
	require.NoError(t, err)

	totals := report.Totals()
	assert.Equal(t, 1, totals.FilesAnalyzed)
	assert.Equal(t, 1, totals.FilesFailed)
	assert.Equal(t, 1, totals.Classes)

	doc := mapper.BuildDocument(report)
	text := mapper.RenderText(doc)
	assert.Contains(t, text, "class A : B")
	assert.NotContains(t, text, "skip.py")

	data, err := mapper.EncodeJSON(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"app.py"`)
}

func TestNewServer_RequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := NewServer(nil)
	require.Error(t, err)

	srv, err := NewServer(config.Default())
	require.NoError(t, err)
	assert.NotNil(t, srv)
}
