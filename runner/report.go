package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/uispecx/uispec/internal/slug"
)

// Status is the outcome of one executed test.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Result is the outcome of one registered test.
type Result struct {
	// ID is a stable machine-readable id derived from the group and
	// test titles, e.g. "button.renders_disabled".
	ID         string `json:"id"`
	Group      string `json:"group"`
	Name       string `json:"name"`
	Status     Status `json:"status"`
	DurationMs int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

// Summary aggregates one Run.
type Summary struct {
	RunID           string   `json:"run_id"`
	Total           int      `json:"total"`
	Passed          int      `json:"passed"`
	Failed          int      `json:"failed"`
	Skipped         int      `json:"skipped"`
	ExecutionTimeMs int64    `json:"execution_time_ms"`
	Results         []Result `json:"results"`
}

// Ok reports whether the run had no failures.
func (s *Summary) Ok() bool {
	return s.Failed == 0
}

func newResult(group, name string, status Status, elapsed time.Duration, err error) Result {
	res := Result{
		ID:         slug.Join(group, name),
		Group:      group,
		Name:       name,
		Status:     status,
		DurationMs: elapsed.Milliseconds(),
	}
	if err != nil {
		res.Error = err.Error()
	}
	return res
}

func summarize(runID string, results []Result, elapsed time.Duration) *Summary {
	s := &Summary{
		RunID:           runID,
		Total:           len(results),
		ExecutionTimeMs: elapsed.Milliseconds(),
		Results:         results,
	}
	for _, res := range results {
		switch res.Status {
		case StatusPassed:
			s.Passed++
		case StatusFailed:
			s.Failed++
		case StatusSkipped:
			s.Skipped++
		}
	}
	return s
}

func writeReport(w io.Writer, s *Summary) {
	for _, res := range s.Results {
		switch res.Status {
		case StatusPassed:
			_, _ = fmt.Fprintf(w, "  %s %s\n", color.GreenString("✔"), res.ID)
		case StatusFailed:
			_, _ = fmt.Fprintf(w, "  %s %s: %s\n", color.RedString("✘"), res.ID, res.Error)
		case StatusSkipped:
			_, _ = fmt.Fprintf(w, "  %s %s (skipped)\n", color.YellowString("-"), res.ID)
		}
	}

	_, _ = fmt.Fprintln(w, "\nSuite Run Summary:")
	_, _ = fmt.Fprintf(w, "Total Tests: %d\n", s.Total)
	_, _ = fmt.Fprintf(w, "Passed: %d\n", s.Passed)
	_, _ = fmt.Fprintf(w, "Failed: %d\n", s.Failed)
	if s.Skipped > 0 {
		_, _ = fmt.Fprintf(w, "Skipped: %d\n", s.Skipped)
	}
	_, _ = fmt.Fprintf(w, "Execution Time: %dms\n", s.ExecutionTimeMs)
}
