package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchgate/internal/artifact"
)

const fmtDoc = `[
  {"benchmark": "BenchmarkEnforce", "primaryMetric": {"score": 1000000.0, "scoreUnit": "ops/s"}},
  {"benchmark": "Hash", "primaryMetric": {"score": 25.5, "scoreUnit": "MB/s"}},
  {"benchmark": "BenchmarkSlow", "primaryMetric": {"score": 1.5, "scoreUnit": "ms/op"}}
]`

func TestFmtCommand(t *testing.T) {
	t.Setenv("COMMIT_ID", "4ac9f04ddedb2c07e4d03d8c306b5750c89ed9ad")
	t.Setenv("COMMIT_AUTHOR_NAME", "Yang Luo")
	t.Setenv("COMMIT_AUTHOR_EMAIL", "hsluoyz@qq.com")
	t.Setenv("COMMIT_MESSAGE", "feat: speed up role inheritance")

	dir := t.TempDir()
	in := writeDoc(t, dir, "results.json", fmtDoc)
	out := filepath.Join(dir, "artifact.json")

	stdout, err := executeCommand(rootCmd, "fmt", in, out)
	require.NoError(t, err, stdout)

	a, err := artifact.Load(out)
	require.NoError(t, err)

	assert.Equal(t, "4ac9f04ddedb2c07e4d03d8c306b5750c89ed9ad", a.Commit.ID)
	assert.Equal(t, "Yang Luo", a.Commit.Author.Name)
	assert.Equal(t, "feat: speed up role inheritance", a.Commit.Message)
	assert.True(t, a.Commit.Distinct)
	assert.Equal(t, "node", a.Tool)
	assert.Positive(t, a.Date)
	assert.Positive(t, a.Procs)

	// The MB/s row has no ns/op rendition and must not appear.
	require.Len(t, a.Benches, 2)
	assert.Equal(t, "Enforce", a.Benches[0].Name)
	assert.Equal(t, 1000.0, a.Benches[0].Value)
	assert.Equal(t, "ns/op", a.Benches[0].Unit)
	assert.Equal(t, "Slow", a.Benches[1].Name)
	assert.Equal(t, 1500000.0, a.Benches[1].Value)
	assert.Equal(t, "ns/op", a.Benches[1].Unit)
}

func TestFmtToolFlag(t *testing.T) {
	dir := t.TempDir()
	in := writeDoc(t, dir, "results.json", fmtDoc)
	out := filepath.Join(dir, "artifact.json")

	stdout, err := executeCommand(rootCmd, "fmt", in, out, "--tool", "tinygo")
	require.NoError(t, err, stdout)

	a, err := artifact.Load(out)
	require.NoError(t, err)
	assert.Equal(t, "tinygo", a.Tool)
}

func TestFmtToolFromEnv(t *testing.T) {
	t.Setenv("BENCHGATE_FMT_TOOL", "wasm")

	dir := t.TempDir()
	in := writeDoc(t, dir, "results.json", fmtDoc)
	out := filepath.Join(dir, "artifact.json")

	stdout, err := executeCommand(rootCmd, "fmt", in, out)
	require.NoError(t, err, stdout)

	a, err := artifact.Load(out)
	require.NoError(t, err)
	assert.Equal(t, "wasm", a.Tool)
}

func TestFmtMissingInput(t *testing.T) {
	dir := t.TempDir()

	_, err := executeCommand(rootCmd, "fmt", filepath.Join(dir, "nope.json"), filepath.Join(dir, "out.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}

func TestFmtMalformedInput(t *testing.T) {
	dir := t.TempDir()
	in := writeDoc(t, dir, "broken.json", `{"not": "a list"}`)

	_, err := executeCommand(rootCmd, "fmt", in, filepath.Join(dir, "out.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}
