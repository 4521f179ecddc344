package checks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of one check.
type Result struct {
	Name       string `json:"name"`
	Profile    string `json:"profile"`
	Passed     bool   `json:"passed"`
	DurationMS int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
	Screenshot string `json:"screenshot,omitempty"`
}

// Summary is one run of the smoke checks.
type Summary struct {
	RunID    uuid.UUID `json:"run_id"`
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`
	Results  []Result  `json:"results"`
}

func (s Summary) Passed() int {
	n := 0
	for _, r := range s.Results {
		if r.Passed {
			n++
		}
	}
	return n
}

func (s Summary) Failed() int {
	return len(s.Results) - s.Passed()
}

// OK reports whether at least one check ran and none failed.
func (s Summary) OK() bool {
	return len(s.Results) > 0 && s.Failed() == 0
}

func (s Summary) Duration() time.Duration {
	return s.Finished.Sub(s.Started)
}

// FileName is the daily summary file under dir.
func FileName(dir string, at time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("smoke-%s.json", at.Format("2006-01-02")))
}

// Save writes s as indented JSON to the daily summary file and returns its path.
func Save(dir string, s Summary) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", err
	}
	path := FileName(dir, s.Started)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
