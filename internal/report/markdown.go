package report

import (
	"fmt"
	"io"
	"strings"
)

// Markdown renders the comparison as a GitHub-flavored table for PR
// comments. Rows and cells mirror the text report.
func (c Comparison) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "### benchmark comparison: %s vs %s\n\n", ShortRev(c.BaseRev), ShortRev(c.HeadRev))
	b.WriteString("| Benchmark | Base | Head | Diff | Status |\n")
	b.WriteString("| --- | --- | --- | --- | :-: |\n")
	for _, r := range c.Rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			r.Name, meanCell(r.HasBase, r.BaseMean), meanCell(r.HasHead, r.HeadMean), diffCell(r), r.Outcome.Glyph())
	}
	if gb, gh, ok := geomeans(c.Rows); ok {
		diff := "-"
		if gb > 0 {
			diff = fmt.Sprintf("%+.2f%%", (gh-gb)/gb*100)
		}
		fmt.Fprintf(&b, "| _geomean_ | %s | %s | %s | |\n", FormatNs(gb), FormatNs(gh), diff)
	}
	imp, reg, neu, inc := c.Counts()
	fmt.Fprintf(&b, "\n%d regressed, %d improved, %d neutral, %d incomparable\n", reg, imp, neu, inc)
	return b.String()
}

// RenderMarkdown writes the markdown report to w.
func RenderMarkdown(w io.Writer, c Comparison) error {
	_, err := io.WriteString(w, c.Markdown())
	return err
}
