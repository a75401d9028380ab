package results

import (
	"encoding/json"
	"os"

	"benchgate/internal/telemetry"
)

// DiagKind classifies loader diagnostics.
type DiagKind int

const (
	// DiagBadDocument means the document did not parse; the set is empty.
	DiagBadDocument DiagKind = iota
	// DiagUnknownUnit means an entry's unit passed through unconverted.
	DiagUnknownUnit
)

// Diagnostic describes a degraded step during parsing. Degradation is never
// fatal; diagnostics let callers log or count what happened.
type Diagnostic struct {
	Kind DiagKind
	Name string
	Unit string
	Err  error
}

// ParseOption adjusts how a document is folded into a Set.
type ParseOption func(*parseConfig)

type parseConfig struct {
	useRaw bool
	hooks  []func(Diagnostic)
}

func (c *parseConfig) diagnose(d Diagnostic) {
	for _, fn := range c.hooks {
		fn(d)
	}
}

// WithRawSamples aggregates flattened rawData rows instead of the single
// primary score for entries that carry them.
func WithRawSamples() ParseOption {
	return func(c *parseConfig) { c.useRaw = true }
}

// WithDiagnosticFunc registers a sink for loader diagnostics.
func WithDiagnosticFunc(fn func(Diagnostic)) ParseOption {
	return func(c *parseConfig) { c.hooks = append(c.hooks, fn) }
}

// Parse folds a result document into a Set. It is a pure function of the
// byte buffer: malformed input yields an empty set, entries accumulate per
// benchmark name, and every score is normalized to ns/op.
func Parse(data []byte, opts ...ParseOption) Set {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	set := Set{}
	var doc []Entry
	if err := json.Unmarshal(data, &doc); err != nil {
		cfg.diagnose(Diagnostic{Kind: DiagBadDocument, Err: err})
		return set
	}

	for _, e := range doc {
		name := e.Name()
		samples, conv := Normalize(e.PrimaryMetric.Score, e.PrimaryMetric.ScoreUnit)
		if conv == ConvPassthrough {
			cfg.diagnose(Diagnostic{Kind: DiagUnknownUnit, Name: name, Unit: e.PrimaryMetric.ScoreUnit})
		}
		if cfg.useRaw {
			if raw := e.PrimaryMetric.FlattenRaw(); len(raw) > 0 {
				samples = NormalizeRaw(raw, e.PrimaryMetric.ScoreUnit)
			}
		}
		set.Add(name, samples...)
	}
	return set
}

// Load reads a result document from disk. Unreadable or malformed files
// degrade to an empty set so the comparison always proceeds.
func Load(path string, opts ...ParseOption) Set {
	data, err := os.ReadFile(path)
	if err != nil {
		telemetry.LogWarn("result document unreadable", "path", path, "error", err)
		return Set{}
	}
	return Parse(data, append(opts, WithDiagnosticFunc(logDiagnostic(path)))...)
}

func logDiagnostic(path string) func(Diagnostic) {
	return func(d Diagnostic) {
		switch d.Kind {
		case DiagBadDocument:
			telemetry.LogWarn("result document malformed", "path", path, "error", d.Err)
		case DiagUnknownUnit:
			telemetry.LogWarn("unrecognized score unit", "path", path, "benchmark", d.Name, "unit", d.Unit)
		}
	}
}
