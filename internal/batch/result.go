package batch

import (
	"fmt"
	"time"

	"github.com/JonMunkholm/FileTransform/internal/core"
)

// FileResult is the outcome of one file's pipeline.
type FileResult struct {
	File     string
	Category core.Category
	Success  bool
	Skipped  bool
	Output   string            // final CSV path, set on success
	Rules    []core.RuleResult // per-rule application detail
	Messages []string          // operator-facing diagnostics, in order
	Err      error             // cause of failure or skip
	Duration time.Duration
}

// Code returns the error code for Err, or "" when there is none.
func (r *FileResult) Code() string {
	if r.Err == nil {
		return ""
	}
	return core.MapError(r.Err).Code
}

func (r *FileResult) addf(format string, args ...any) {
	r.Messages = append(r.Messages, fmt.Sprintf(format, args...))
}

// Report summarizes a batch run.
type Report struct {
	RunID     string
	Dir       string
	Started   time.Time
	Finished  time.Time
	Processed int // files with a final CSV
	Failed    int
	Skipped   int
	Results   []FileResult
}

func (r *Report) add(res FileResult) {
	switch {
	case res.Success:
		r.Processed++
	case res.Skipped:
		r.Skipped++
	default:
		r.Failed++
	}
	r.Results = append(r.Results, res)
}

// Failures returns the results of files that failed.
func (r *Report) Failures() []FileResult {
	var out []FileResult
	for _, res := range r.Results {
		if !res.Success && !res.Skipped {
			out = append(out, res)
		}
	}
	return out
}

// Duration returns the wall time of the run.
func (r *Report) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}
