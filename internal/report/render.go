package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"benchgate/internal/results"
)

// unknownRev stands in when a revision identifier is absent.
const unknownRev = "unknown"

// ShortRev truncates a revision identifier to its first 7 characters.
func ShortRev(rev string) string {
	if rev == "" {
		return unknownRev
	}
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// FormatNs renders a canonical ns/op value with a 2-decimal unit suffix.
// Negative and NaN values have no meaning as durations and render as "-".
func FormatNs(v float64) string {
	switch {
	case math.IsNaN(v) || v < 0:
		return "-"
	case v < 1e3:
		return fmt.Sprintf("%.2fns", v)
	case v < 1e6:
		return fmt.Sprintf("%.2fµs", v/1e3)
	case v < 1e9:
		return fmt.Sprintf("%.2fms", v/1e6)
	default:
		return fmt.Sprintf("%.2fs", v/1e9)
	}
}

// Text renders the fixed-width comparison report. The output is a pure
// function of the comparison: identical inputs yield identical bytes.
func (c Comparison) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "benchmark comparison: %s vs %s\n", ShortRev(c.BaseRev), ShortRev(c.HeadRev))
	writeRow(&b, "BENCHMARK", "BASE", "HEAD", "DIFF", "STATUS")
	for _, r := range c.Rows {
		writeRow(&b, r.Name, meanCell(r.HasBase, r.BaseMean), meanCell(r.HasHead, r.HeadMean), diffCell(r), r.Outcome.Glyph())
	}
	if gb, gh, ok := geomeans(c.Rows); ok {
		diff := "-"
		if gb > 0 {
			diff = fmt.Sprintf("%+.2f%%", (gh-gb)/gb*100)
		}
		writeRow(&b, "geomean", FormatNs(gb), FormatNs(gh), diff, "")
	}
	imp, reg, neu, inc := c.Counts()
	fmt.Fprintf(&b, "%d regressed, %d improved, %d neutral, %d incomparable\n", reg, imp, neu, inc)
	return b.String()
}

// Render writes the text report to w.
func Render(w io.Writer, c Comparison) error {
	_, err := io.WriteString(w, c.Text())
	return err
}

func writeRow(b *strings.Builder, name, base, head, diff, status string) {
	line := fmt.Sprintf("%-44s %-12s %-12s %-10s %s", name, base, head, diff, status)
	b.WriteString(strings.TrimRight(line, " "))
	b.WriteByte('\n')
}

func meanCell(ok bool, v float64) string {
	if !ok {
		return "-"
	}
	return FormatNs(v)
}

func diffCell(r Row) string {
	if !r.HasDiff || math.IsNaN(r.Diff) {
		return "-"
	}
	return fmt.Sprintf("%+.2f%%", r.Diff*100)
}

// geomeans pairs the rows where both sides measured something positive.
func geomeans(rows []Row) (base, head float64, ok bool) {
	var bs, hs []float64
	for _, r := range rows {
		if r.HasBase && r.HasHead && r.BaseMean > 0 && r.HeadMean > 0 {
			bs = append(bs, r.BaseMean)
			hs = append(hs, r.HeadMean)
		}
	}
	if len(bs) == 0 {
		return 0, 0, false
	}
	return results.Geomean(bs), results.Geomean(hs), true
}
