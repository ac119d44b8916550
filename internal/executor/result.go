package executor

import (
	"github.com/specialistvlad/funcgrid/internal/check"
	"github.com/specialistvlad/funcgrid/internal/severity"
)

// Result describes what happened to one step.
type Result struct {
	Step string
	// Outcome is only meaningful when Classified is true. Uncaught errors
	// leave the step unclassified.
	Outcome    check.Outcome
	Classified bool
	Severity   severity.Level
	// Line is the message written to the result stream.
	Line string
	Err  error
	// Abort asks the caller to skip the rest of the file.
	Abort bool
}

// Failed reports whether the step should count against its file.
func (r Result) Failed() bool {
	return !r.Classified || r.Outcome.Notable()
}
