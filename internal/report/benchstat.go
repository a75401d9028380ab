package report

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"benchgate/internal/results"
)

// BenchstatEnv carries the environment header of a benchstat block.
type BenchstatEnv struct {
	Goos   string
	Goarch string
	Pkg    string
	CPU    string
}

// Benchstat renders two formatted runs (name -> ns/op value) in the
// benchstat layout the dashboard pipeline expects: fenced block, env
// header, 52-char name column, "± ∞" cells and fixed footnotes. Runs here
// carry a single summary value each, so the comparison column is the
// placeholder benchstat prints for n=1.
func Benchstat(base, head map[string]float64, env BenchstatEnv) string {
	var b strings.Builder
	b.WriteString("Comparison:\n")
	b.WriteString("```\n")
	fmt.Fprintf(&b, "goos: %s\n", env.Goos)
	fmt.Fprintf(&b, "goarch: %s\n", env.Goarch)
	if env.Pkg != "" {
		fmt.Fprintf(&b, "pkg: %s\n", env.Pkg)
	}
	fmt.Fprintf(&b, "cpu: %s\n", env.CPU)
	fmt.Fprintf(&b, "%-52s│ %-19s │           %-19s           │\n", "", "base", "pr")
	fmt.Fprintf(&b, "%-52s│       sec/op        │    sec/op      vs base                │   Diff\n", "")

	var baseVals, headVals []float64
	for _, name := range sortedUnion(base, head) {
		bv := base[name]
		hv := head[name]
		if bv > 0 {
			baseVals = append(baseVals, bv)
		}
		if hv > 0 {
			headVals = append(headVals, hv)
		}
		comp := ""
		if bv > 0 && hv > 0 {
			comp = "~ (p=1.000 n=1) ²"
		}
		b.WriteString(runePad(name, 52) + runePad(benchstatCell(bv), 22) + runePad(benchstatCell(hv), 22) + comp + "\n")
	}

	if len(baseVals) > 0 && len(headVals) > 0 {
		b.WriteString(runePad("geomean", 52) + runePad(shortNs(results.Geomean(baseVals)), 22) + runePad(shortNs(results.Geomean(headVals)), 22) + "\n")
	}

	b.WriteString("¹ need >= 6 samples for confidence interval at level 0.95\n")
	b.WriteString("² all samples are equal\n")
	b.WriteString("³ need >= 4 samples to detect a difference at alpha level 0.05\n")
	b.WriteString("⁴ summaries must be >0 to compute geomean\n")
	b.WriteString("```\n")
	return b.String()
}

func benchstatCell(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return shortNs(v) + " ± ∞ ¹"
}

// runePad left-aligns s in a field of width characters. Cells here carry
// multibyte runes (µ, ± ∞ ¹), so byte-counting %-*s would shortchange the
// padding and skew the columns.
func runePad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// shortNs is FormatNs with benchstat's single-letter suffixes.
func shortNs(v float64) string {
	switch {
	case v < 1e3:
		return fmt.Sprintf("%.2fn", v)
	case v < 1e6:
		return fmt.Sprintf("%.2fµ", v/1e3)
	case v < 1e9:
		return fmt.Sprintf("%.2fm", v/1e6)
	default:
		return fmt.Sprintf("%.2fs", v/1e9)
	}
}

func sortedUnion(a, b map[string]float64) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	names := make([]string, 0, len(a)+len(b))
	for name := range a {
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for name := range b {
		if _, ok := seen[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
