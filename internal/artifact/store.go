package artifact

import (
	"encoding/json"
	"fmt"
	"os"

	"benchgate/internal/results"
)

// LoadEntries reads a raw result document. Unlike the comparison loader,
// formatting requires readable input and fails loudly.
func LoadEntries(path string) ([]results.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var doc []results.Entry
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Load reads a formatted artifact.
func Load(path string) (Artifact, error) {
	var a Artifact
	data, err := os.ReadFile(path)
	if err != nil {
		return a, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &a); err != nil {
		return a, fmt.Errorf("parsing %s: %w", path, err)
	}
	return a, nil
}

// Write stores the artifact with two-space indentation.
func Write(path string, a Artifact) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
