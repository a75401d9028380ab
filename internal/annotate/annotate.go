// Package annotate post-processes a markdown comparison document: it cleans
// benchmark names, computes per-row diffs from the first two numeric cells
// and appends an aligned diff column with a status icon.
package annotate

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"benchgate/internal/telemetry"
)

const indent = "        "

var (
	benchPrefixRe  = regexp.MustCompile(`^Benchmark`)
	workerSuffixRe = regexp.MustCompile(`(\S+?)-\d+(\s|$)`)
	superscriptRe  = regexp.MustCompile(`[¹²³⁴⁵⁶⁷⁸⁹⁰]`)
	footnoteRe     = regexp.MustCompile(`^\s*[¹²³⁴⁵⁶⁷⁸⁹⁰]`)
	needSamplesRe  = regexp.MustCompile(`need\s*>?=\s*\d+\s+samples`)
	numberRe       = regexp.MustCompile(`^([-+]?\d*\.?\d+)([a-zA-Zµ]+)?$`)
	diffLabelRe    = regexp.MustCompile(`(?i)\s+Diff\s*$`)
)

// ProcessFile rewrites a comparison document in place. A missing file is
// not an error: there is nothing to annotate and the workflow moves on.
func ProcessFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		telemetry.LogInfo("nothing to annotate", "path", path)
		return nil
	}
	if err != nil {
		return err
	}
	out, err := Process(string(data))
	if err != nil {
		return fmt.Errorf("annotating %s: %w", path, err)
	}
	return os.WriteFile(path, []byte(out), 0644)
}

// Process runs the annotation over a whole document. Alignment counts runes,
// not bytes: the cells carry multibyte characters like ± and µ.
func Process(src string) (string, error) {
	lines := strings.Split(strings.TrimSuffix(src, "\n"), "\n")

	// First pass sizes the diff column from the widest cleaned data line.
	maxWidth := 0
	inCode := false
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCode = !inCode
			continue
		}
		if !inCode || isFootnote(line) {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isMetadata(trimmed) || isHeader(line) {
			continue
		}
		clean := strings.TrimRightFunc(stripWorkerSuffix(line), unicode.IsSpace)
		if w := utf8.RuneCountInString(clean); w > maxWidth {
			maxWidth = w
		}
	}
	diffColStart := maxWidth - 13

	out := make([]string, 0, len(lines))
	inCode = false
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCode = !inCode
			out = append(out, line)
			continue
		}
		if !inCode {
			out = append(out, line)
			continue
		}
		if isFootnote(line) {
			out = append(out, indent+line)
			continue
		}
		if isHeader(line) {
			out = append(out, indent+rewriteHeader(line, diffColStart))
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isMetadata(trimmed) {
			out = append(out, indent+line)
			continue
		}

		clean := stripWorkerSuffix(line)
		tokens := strings.Fields(clean)
		if len(tokens) == 0 {
			out = append(out, indent+clean)
			continue
		}
		nums, err := firstTwoValues(tokens)
		if err != nil {
			return "", err
		}
		if len(nums) == 2 && nums[0] != 0 {
			diff := (nums[1] - nums[0]) / nums[0] * 100
			left := strings.TrimRightFunc(clean, unicode.IsSpace)
			suffix := fmt.Sprintf("%+.2f%% %s", diff, diffIcon(diff))
			out = append(out, indent+alignSuffix(left, suffix, diffColStart))
			continue
		}
		out = append(out, indent+clean)
	}

	return strings.Join(out, "\n") + "\n", nil
}

func isFootnote(line string) bool {
	return footnoteRe.MatchString(line) || needSamplesRe.MatchString(line)
}

func isMetadata(trimmed string) bool {
	for _, prefix := range []string{"goos:", "goarch:", "pkg:", "cpu:"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

func isHeader(line string) bool {
	if !strings.Contains(line, "│") {
		return false
	}
	return strings.Contains(line, "vs base") || strings.Contains(line, "old") || strings.Contains(line, "new")
}

func stripWorkerSuffix(text string) string {
	text = benchPrefixRe.ReplaceAllString(text, "")
	return workerSuffixRe.ReplaceAllString(text, "$1$2")
}

// diffIcon mirrors the 10% markers the PR comment uses.
func diffIcon(diff float64) string {
	if diff > 10 {
		return "🐌"
	}
	if diff < -10 {
		return "🚀"
	}
	return "➡️"
}

// rewriteHeader strips any trailing rule and Diff label, then re-appends
// a Diff column aligned with the data rows.
func rewriteHeader(line string, col int) string {
	h := strings.TrimRightFunc(line, unicode.IsSpace)
	h = strings.TrimRight(h, "│")
	h = strings.TrimRightFunc(h, unicode.IsSpace)
	h = diffLabelRe.ReplaceAllString(h, "")
	if n := utf8.RuneCountInString(h); n < col {
		h += strings.Repeat(" ", col-n)
	} else {
		h += "  "
	}
	if strings.Contains(line, "vs base") {
		h += "Diff"
	}
	return h + "│"
}

func alignSuffix(left, suffix string, col int) string {
	if n := utf8.RuneCountInString(left); n < col {
		return left + strings.Repeat(" ", col-n) + suffix
	}
	return left + "  " + suffix
}

var skipTokens = map[string]bool{"±": true, "∞": true, "~": true, "│": true, "|": true}

// firstTwoValues pulls the first two parseable numeric cells after the
// benchmark name.
func firstTwoValues(tokens []string) ([]float64, error) {
	var found []float64
	for _, tok := range tokens[1:] {
		if skipTokens[tok] || strings.ContainsAny(tok, "%=") {
			continue
		}
		val, ok, err := parseValue(tok)
		if err != nil {
			return nil, err
		}
		if ok {
			found = append(found, val)
			if len(found) == 2 {
				break
			}
		}
	}
	return found, nil
}

// parseValue reads a benchstat cell token into seconds. Unitless numbers
// pass through as-is; an unrecognized unit is a real error since a silent
// skip would produce a wrong diff.
func parseValue(token string) (float64, bool, error) {
	token = superscriptRe.ReplaceAllString(token, "")
	token, _, _ = strings.Cut(token, "±")
	token, _, _ = strings.Cut(token, "(")
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, false, nil
	}
	m := numberRe.FindStringSubmatch(token)
	if m == nil {
		return 0, false, nil
	}
	val, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false, nil
	}
	switch strings.ReplaceAll(m[2], "µ", "u") {
	case "n", "ns":
		return val * 1e-9, true, nil
	case "u", "us":
		return val * 1e-6, true, nil
	case "m", "ms":
		return val * 1e-3, true, nil
	case "s":
		return val, true, nil
	case "":
		return val, true, nil
	default:
		return 0, false, fmt.Errorf("unexpected unit %q in %q", m[2], token)
	}
}
