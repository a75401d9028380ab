package artifact

import (
	"math"
	"os"
	"runtime"
	"strings"
	"time"

	"benchgate/internal/results"
)

// DefaultTool labels artifacts for the dashboard's parser selection. The
// upstream suite runs on node, so that is what the dashboard expects.
const DefaultTool = "node"

// CommitFromEnv assembles commit metadata from the CI environment.
func CommitFromEnv() CommitInfo {
	return CommitInfo{
		Author: Person{
			Email:    os.Getenv("COMMIT_AUTHOR_EMAIL"),
			Name:     os.Getenv("COMMIT_AUTHOR_NAME"),
			Username: os.Getenv("COMMIT_AUTHOR_USERNAME"),
		},
		Committer: Person{
			Email:    os.Getenv("COMMIT_COMMITTER_EMAIL"),
			Name:     os.Getenv("COMMIT_COMMITTER_NAME"),
			Username: os.Getenv("COMMIT_COMMITTER_USERNAME"),
		},
		Distinct:  true,
		ID:        os.Getenv("COMMIT_ID"),
		Message:   os.Getenv("COMMIT_MESSAGE"),
		Timestamp: os.Getenv("COMMIT_TIMESTAMP"),
		TreeID:    os.Getenv("COMMIT_TREE_ID"),
		URL:       os.Getenv("COMMIT_URL"),
	}
}

// Build converts raw entries into a formatted artifact. An entry converts
// when its unit is recognized and the canonical value is positive;
// passthrough units are skipped rather than guessed at.
func Build(entries []results.Entry, commit CommitInfo, tool string) Artifact {
	if tool == "" {
		tool = DefaultTool
	}
	benches := make([]Bench, 0, len(entries))
	for _, e := range entries {
		samples, conv := results.Normalize(e.PrimaryMetric.Score, e.PrimaryMetric.ScoreUnit)
		if conv == results.ConvPassthrough || conv == results.ConvZeroRate {
			continue
		}
		val := samples[0]
		if val <= 0 {
			continue
		}
		benches = append(benches, Bench{
			Name:  strings.TrimPrefix(e.Name(), "Benchmark"),
			Value: round2(val),
			Unit:  "ns/op",
		})
	}
	return Artifact{
		Commit:  commit,
		Date:    time.Now().UnixMilli(),
		Tool:    tool,
		Procs:   runtime.NumCPU(),
		Benches: benches,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
