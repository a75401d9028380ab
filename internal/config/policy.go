package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy carries per-benchmark regression thresholds, usually committed
// next to the benchmark suite. Thresholds are fractional: 0.25 allows a
// 25% slowdown before a row counts as regressed.
type Policy struct {
	Threshold  *float64          `yaml:"threshold"`
	Benchmarks []BenchmarkPolicy `yaml:"benchmarks"`
}

// BenchmarkPolicy overrides the threshold for a single benchmark name.
type BenchmarkPolicy struct {
	Name      string   `yaml:"name"`
	Threshold *float64 `yaml:"threshold"`
}

// LoadPolicy reads a threshold policy file.
func LoadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}
	for _, b := range p.Benchmarks {
		if b.Name == "" {
			return nil, fmt.Errorf("policy entry without a benchmark name")
		}
		if b.Threshold != nil && *b.Threshold < 0 {
			return nil, fmt.Errorf("negative threshold for %q", b.Name)
		}
	}
	if p.Threshold != nil && *p.Threshold < 0 {
		return nil, fmt.Errorf("negative global threshold")
	}
	return &p, nil
}

// For resolves the effective threshold for a benchmark: its own entry
// first, then the policy-wide threshold, then fallback.
func (p *Policy) For(name string, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	for _, b := range p.Benchmarks {
		if b.Name == name && b.Threshold != nil {
			return *b.Threshold
		}
	}
	if p.Threshold != nil {
		return *p.Threshold
	}
	return fallback
}
