// Package results loads benchmark result documents and folds their metrics
// into canonical nanoseconds-per-operation samples.
package results

import (
	"encoding/json"
	"sort"
)

// UnknownName collects entries that carry no benchmark name.
const UnknownName = "Unknown"

// RawRow is one element of a metric's rawData: either a bare sample or a
// nested list of samples. Elements of any other shape degrade to an empty
// row instead of failing the document.
type RawRow []float64

func (r *RawRow) UnmarshalJSON(data []byte) error {
	var list []float64
	if err := json.Unmarshal(data, &list); err == nil {
		*r = list
		return nil
	}
	var single float64
	if err := json.Unmarshal(data, &single); err == nil {
		*r = RawRow{single}
		return nil
	}
	*r = nil
	return nil
}

// Metric is the primaryMetric block of a benchmark entry.
type Metric struct {
	Score     float64  `json:"score"`
	ScoreUnit string   `json:"scoreUnit"`
	RawData   []RawRow `json:"rawData,omitempty"`
}

// FlattenRaw returns all raw samples in document order.
func (m Metric) FlattenRaw() []float64 {
	var flat []float64
	for _, row := range m.RawData {
		flat = append(flat, row...)
	}
	return flat
}

// Entry is a single benchmark record in a result document.
type Entry struct {
	Benchmark     string `json:"benchmark"`
	PrimaryMetric Metric `json:"primaryMetric"`
}

// Name returns the benchmark name, defaulting unnamed entries.
func (e Entry) Name() string {
	if e.Benchmark == "" {
		return UnknownName
	}
	return e.Benchmark
}

// Aggregate accumulates the canonical samples observed for one name.
type Aggregate struct {
	Name    string
	Samples []float64
}

// Set maps benchmark names to their aggregates.
type Set map[string]*Aggregate

// Add appends samples under name, creating the aggregate on first use.
func (s Set) Add(name string, samples ...float64) {
	agg, ok := s[name]
	if !ok {
		agg = &Aggregate{Name: name}
		s[name] = agg
	}
	agg.Samples = append(agg.Samples, samples...)
}

// Names returns the benchmark names in lexicographic order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TotalSamples counts the samples across all aggregates.
func (s Set) TotalSamples() int {
	n := 0
	for _, agg := range s {
		n += len(agg.Samples)
	}
	return n
}
