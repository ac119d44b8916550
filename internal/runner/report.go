package runner

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/specialistvlad/funcgrid/internal/check"
	"github.com/specialistvlad/funcgrid/internal/executor"
	"github.com/specialistvlad/funcgrid/internal/severity"
)

// Status is what happened to a file as a whole.
type Status string

const (
	// StatusCompleted means every step ran.
	StatusCompleted Status = "completed"
	// StatusAborted means stop_run_on_fail cut the file short.
	StatusAborted Status = "aborted"
	// StatusSkipped means the file set skip_file.
	StatusSkipped Status = "skipped"
	// StatusEmpty means the file had no steps.
	StatusEmpty Status = "empty"
	// StatusFailed means the file could not be run at all.
	StatusFailed Status = "failed"
	// StatusCancelled means the run's context ended mid-file.
	StatusCancelled Status = "cancelled"
)

// StepReport is the outcome of one step.
type StepReport struct {
	Name string `json:"name"`
	// Outcome is nil for uncaught errors.
	Outcome  *check.Outcome `json:"outcome"`
	Severity severity.Level `json:"severity"`
	Error    string         `json:"error,omitempty"`
}

// FileReport is the outcome of one configuration file.
type FileReport struct {
	Source    string       `json:"source"`
	CheckName string       `json:"check_name,omitempty"`
	Stream    string       `json:"stream,omitempty"`
	Status    Status       `json:"status"`
	Steps     []StepReport `json:"steps,omitempty"`
	// Combined folds the classified step outcomes with check.Combine. It is
	// nil when no step was classified.
	Combined *check.Outcome `json:"combined,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// Report describes a whole run.
type Report struct {
	RunID      uuid.UUID    `json:"run_id"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Files      []FileReport `json:"files"`
}

func newStepReport(res executor.Result) StepReport {
	sr := StepReport{Name: res.Step, Severity: res.Severity}
	if res.Classified {
		outcome := res.Outcome
		sr.Outcome = &outcome
	}
	if res.Err != nil {
		sr.Error = res.Err.Error()
	}
	return sr
}

// combine fills in Combined from the classified steps.
func (f *FileReport) combine() {
	var outcomes []check.Outcome
	for _, s := range f.Steps {
		if s.Outcome != nil {
			outcomes = append(outcomes, *s.Outcome)
		}
	}
	if len(outcomes) == 0 {
		return
	}
	combined := check.Combine(outcomes)
	f.Combined = &combined
}

// StatusCounts returns how many files ended in each status.
func (r *Report) StatusCounts() map[Status]int {
	counts := make(map[Status]int)
	for _, f := range r.Files {
		counts[f.Status]++
	}
	return counts
}

// OutcomeCounts returns how many steps ended in each outcome. Steps without
// an outcome are counted under "UNCAUGHT".
func (r *Report) OutcomeCounts() map[string]int {
	counts := make(map[string]int)
	for _, f := range r.Files {
		for _, s := range f.Steps {
			if s.Outcome == nil {
				counts["UNCAUGHT"]++
				continue
			}
			counts[s.Outcome.String()]++
		}
	}
	return counts
}

// Failed reports whether any step ended FAILED, ERROR or uncaught, or any
// file could not be run.
func (r *Report) Failed() bool {
	for _, f := range r.Files {
		if f.Status == StatusFailed {
			return true
		}
		for _, s := range f.Steps {
			if s.Outcome == nil || s.Outcome.Notable() {
				return true
			}
		}
	}
	return false
}

// WriteSummary prints one line per file followed by the step totals.
func (r *Report) WriteSummary(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Run %s (%s)\n", r.RunID, r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond))
	fmt.Fprintln(tw, "FILE\tCHECK\tSTATUS\tSTEPS\tCOMBINED")
	for _, f := range r.Files {
		combined := "-"
		if f.Combined != nil {
			combined = f.Combined.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", f.Source, f.CheckName, f.Status, len(f.Steps), combined)
	}

	counts := r.OutcomeCounts()
	fmt.Fprintf(tw, "Totals:\tSUCCESS=%d\tWARNING=%d\tFAILED=%d\tERROR=%d\tUNCAUGHT=%d\n",
		counts[check.Success.String()], counts[check.Warning.String()],
		counts[check.Failed.String()], counts[check.Error.String()], counts["UNCAUGHT"])
	return tw.Flush()
}
