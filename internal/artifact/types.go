// Package artifact builds and reads the formatted benchmark document the
// dashboard pipeline stores per commit.
package artifact

// Person identifies a commit author or committer.
type Person struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// CommitInfo mirrors the commit block of the artifact document.
type CommitInfo struct {
	Author    Person `json:"author"`
	Committer Person `json:"committer"`
	Distinct  bool   `json:"distinct"`
	ID        string `json:"id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	TreeID    string `json:"tree_id"`
	URL       string `json:"url"`
}

// Bench is one formatted benchmark value.
type Bench struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
	Extra string  `json:"extra"`
}

// Artifact is the stored per-commit benchmark document.
type Artifact struct {
	Commit  CommitInfo `json:"commit"`
	Date    int64      `json:"date"`
	Tool    string     `json:"tool"`
	Procs   int        `json:"procs"`
	Benches []Bench    `json:"benches"`
}

// Values maps bench names to their ns/op values.
func (a Artifact) Values() map[string]float64 {
	vals := make(map[string]float64, len(a.Benches))
	for _, b := range a.Benches {
		vals[b.Name] = b.Value
	}
	return vals
}
