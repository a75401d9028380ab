package report

import (
	"math"
	"strings"
	"testing"

	"benchgate/internal/results"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNs(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{-1, "-"},
		{math.NaN(), "-"},
		{0, "0.00ns"},
		{250, "250.00ns"},
		{999.994, "999.99ns"},
		{1000, "1.00µs"},
		{123456, "123.46µs"},
		{1e6, "1.00ms"},
		{2.5e6, "2.50ms"},
		{1e9, "1.00s"},
		{1.5e10, "15.00s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNs(tt.in))
	}
}

func TestShortRev(t *testing.T) {
	assert.Equal(t, "unknown", ShortRev(""))
	assert.Equal(t, "abc", ShortRev("abc"))
	assert.Equal(t, "abcdefg", ShortRev("abcdefg"))
	assert.Equal(t, "4ac9f04", ShortRev("4ac9f04d1b2e8c77"))
}

func TestTextReport(t *testing.T) {
	base := setOf(map[string][]float64{"RBACModel": {1000}, "BasicModel": {250}})
	head := setOf(map[string][]float64{"RBACModel": {2000}, "BasicModel": {250}})

	c := Compare(base, head, WithRevisions("4ac9f04d1b2e", "081b2be77c01"))
	text := c.Text()
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	require.Len(t, lines, 6)

	assert.Equal(t, "benchmark comparison: 4ac9f04 vs 081b2be", lines[0])
	assert.Contains(t, lines[1], "BENCHMARK")
	assert.Contains(t, lines[1], "STATUS")

	assert.Contains(t, lines[2], "BasicModel")
	assert.Contains(t, lines[2], "250.00ns")
	assert.Contains(t, lines[2], "+0.00%")
	assert.Contains(t, lines[2], "➡️")

	assert.Contains(t, lines[3], "RBACModel")
	assert.Contains(t, lines[3], "1.00µs")
	assert.Contains(t, lines[3], "2.00µs")
	assert.Contains(t, lines[3], "+100.00%")
	assert.Contains(t, lines[3], "🐌")

	// Columns line up: the BASE cell starts right after the 44-char name
	// column on every data row.
	assert.Equal(t, 45, strings.Index(lines[2], "250.00ns"))
	assert.Equal(t, 45, strings.Index(lines[3], "1.00µs"))

	// geomean over both rows: sqrt(1000*250) and sqrt(2000*250).
	assert.Contains(t, lines[4], "geomean")
	assert.Contains(t, lines[4], "500.00ns")
	assert.Contains(t, lines[4], "707.11ns")
	assert.Contains(t, lines[4], "+41.42%")

	assert.Equal(t, "1 regressed, 0 improved, 1 neutral, 0 incomparable", lines[5])
}

func TestTextReportUnparsableHead(t *testing.T) {
	base := results.Parse([]byte(`[
		{"benchmark": "Enforce", "primaryMetric": {"score": 100, "scoreUnit": "ns/op"}},
		{"benchmark": "Load", "primaryMetric": {"score": 200, "scoreUnit": "ns/op"}}
	]`))
	head := results.Parse([]byte("%% corrupted output %%"))

	c := Compare(base, head)
	text := c.Text()

	// The report survives with every base benchmark present.
	assert.NotEmpty(t, text)
	assert.Contains(t, text, "Enforce")
	assert.Contains(t, text, "Load")
	assert.Contains(t, text, "0 regressed, 0 improved, 0 neutral, 2 incomparable")
	assert.NotContains(t, text, "geomean")

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "Enforce") || strings.HasPrefix(line, "Load") {
			assert.Contains(t, line, "-")
		}
	}
}

func TestTextReportNaNMeans(t *testing.T) {
	base := setOf(map[string][]float64{"Wild": {math.NaN(), 100}})
	head := setOf(map[string][]float64{"Wild": {100}})

	c := Compare(base, head)
	require.Len(t, c.Rows, 1)
	assert.Equal(t, Neutral, c.Rows[0].Outcome)

	text := c.Text()
	row := strings.Split(text, "\n")[2]
	assert.Contains(t, row, "Wild")
	// NaN base mean renders "-" for both the mean and the diff.
	assert.Equal(t, "-", strings.Fields(row)[1])
	assert.Contains(t, row, "100.00ns")
}

func TestTextReportUnknownRevisions(t *testing.T) {
	c := Compare(results.Set{}, results.Set{})
	assert.True(t, strings.HasPrefix(c.Text(), "benchmark comparison: unknown vs unknown\n"))
}

func TestMarkdownReport(t *testing.T) {
	base := setOf(map[string][]float64{"RBACModel": {1000}})
	head := setOf(map[string][]float64{"RBACModel": {2000}})

	md := Compare(base, head, WithRevisions("4ac9f04d", "081b2be7")).Markdown()

	assert.Contains(t, md, "### benchmark comparison: 4ac9f04 vs 081b2be")
	assert.Contains(t, md, "| Benchmark | Base | Head | Diff | Status |")
	assert.Contains(t, md, "| RBACModel | 1.00µs | 2.00µs | +100.00% | 🐌 |")
	assert.Contains(t, md, "| _geomean_ |")
	assert.Contains(t, md, "1 regressed, 0 improved, 0 neutral, 0 incomparable")
}
