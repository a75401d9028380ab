// Package report pairs two normalized result sets and renders the outcome
// in the formats the CI pipeline consumes.
package report

import (
	"sort"

	"benchgate/internal/results"
)

// DefaultThreshold is the relative diff beyond which a benchmark counts as
// moved. A diff of exactly the threshold stays neutral.
const DefaultThreshold = 0.10

// Outcome classifies a benchmark's movement between two runs.
type Outcome int

const (
	Neutral Outcome = iota
	Improved
	Regressed
	Incomparable
)

func (o Outcome) String() string {
	switch o {
	case Improved:
		return "improved"
	case Regressed:
		return "regressed"
	case Incomparable:
		return "incomparable"
	default:
		return "neutral"
	}
}

// Glyph returns the status cell for an outcome.
func (o Outcome) Glyph() string {
	switch o {
	case Improved:
		return "🚀"
	case Regressed:
		return "🐌"
	case Neutral:
		return "➡️"
	default:
		return "-"
	}
}

// Row is one benchmark pairing in a comparison.
type Row struct {
	Name     string
	BaseMean float64
	HeadMean float64
	HasBase  bool
	HasHead  bool
	Diff     float64
	HasDiff  bool
	Outcome  Outcome
}

// Comparison pairs two runs across the union of their benchmark names.
type Comparison struct {
	BaseRev   string
	HeadRev   string
	Threshold float64
	Rows      []Row
}

// Option adjusts how a comparison is computed.
type Option func(*compareConfig)

type compareConfig struct {
	baseRev      string
	headRev      string
	threshold    float64
	thresholdFor func(name string) float64
}

// WithRevisions records the identifiers of the two compared revisions.
func WithRevisions(base, head string) Option {
	return func(c *compareConfig) { c.baseRev, c.headRev = base, head }
}

// WithThreshold overrides the default classification threshold.
func WithThreshold(t float64) Option {
	return func(c *compareConfig) { c.threshold = t }
}

// WithThresholdFunc installs a per-benchmark threshold lookup.
func WithThresholdFunc(fn func(name string) float64) Option {
	return func(c *compareConfig) { c.thresholdFor = fn }
}

// Compare pairs the two sets over the sorted union of their names. Rows are
// deterministic: the same inputs always produce the same slice.
func Compare(base, head results.Set, opts ...Option) Comparison {
	cfg := compareConfig{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}

	rows := make([]Row, 0, len(base)+len(head))
	for _, name := range unionNames(base, head) {
		b, bok := base[name]
		h, hok := head[name]
		hasBase := bok && len(b.Samples) > 0
		hasHead := hok && len(h.Samples) > 0

		row := Row{Name: name, HasBase: hasBase, HasHead: hasHead}
		if hasBase {
			row.BaseMean = results.Mean(b.Samples)
		}
		if hasHead {
			row.HeadMean = results.Mean(h.Samples)
		}

		switch {
		case !hasBase || !hasHead:
			row.Outcome = Incomparable
		case row.BaseMean > 0:
			row.Diff = (row.HeadMean - row.BaseMean) / row.BaseMean
			row.HasDiff = true
			row.Outcome = classify(row.Diff, cfg.thresholdOf(name))
		default:
			// Zero or NaN base mean: no defined diff, no verdict.
			row.Outcome = Neutral
		}
		rows = append(rows, row)
	}

	return Comparison{
		BaseRev:   cfg.baseRev,
		HeadRev:   cfg.headRev,
		Threshold: cfg.threshold,
		Rows:      rows,
	}
}

func (c compareConfig) thresholdOf(name string) float64 {
	if c.thresholdFor != nil {
		return c.thresholdFor(name)
	}
	return c.threshold
}

// classify applies the strict-inequality threshold rule.
func classify(diff, threshold float64) Outcome {
	switch {
	case diff < -threshold:
		return Improved
	case diff > threshold:
		return Regressed
	default:
		return Neutral
	}
}

func unionNames(base, head results.Set) []string {
	seen := make(map[string]struct{}, len(base)+len(head))
	names := make([]string, 0, len(base)+len(head))
	for name := range base {
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for name := range head {
		if _, ok := seen[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Counts tallies rows by outcome.
func (c Comparison) Counts() (improved, regressed, neutral, incomparable int) {
	for _, r := range c.Rows {
		switch r.Outcome {
		case Improved:
			improved++
		case Regressed:
			regressed++
		case Incomparable:
			incomparable++
		default:
			neutral++
		}
	}
	return
}

// Regressions returns the regressed rows, worst first.
func (c Comparison) Regressions() []Row {
	var out []Row
	for _, r := range c.Rows {
		if r.Outcome == Regressed {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Diff > out[j].Diff })
	return out
}
