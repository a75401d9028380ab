package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewCommand(t *testing.T) {
	report := `### benchmark comparison: 4ac9f04 vs 081b2be

| Benchmark | Base | Head | Diff | Status |
|---|---|---|---|---|
| Enforce | 1.00µs | 2.00µs | +100.00% | 🐌 |
`
	dir := t.TempDir()
	path := writeDoc(t, dir, "comparison.md", report)

	out, err := executeCommand(rootCmd, "view", path)
	require.NoError(t, err)

	// The renderer restyles the markdown but keeps the content.
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "benchmark comparison")
	assert.Contains(t, out, "Enforce")
	assert.Contains(t, out, "+100.00%")
}

func TestViewMissingFile(t *testing.T) {
	_, err := executeCommand(rootCmd, "view", filepath.Join(t.TempDir(), "nope.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read report")
}
