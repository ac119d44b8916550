package executor

import (
	"fmt"

	"github.com/specialistvlad/funcgrid/internal/check"
	"github.com/specialistvlad/funcgrid/internal/severity"
)

// Column widths of a result line.
const (
	stepWidth     = 9
	outcomeWidth  = 7
	severityWidth = 24
)

// formatResult renders the line for a classified step:
//
//	<step> - <outcome>[ - Severity: <label>] - <left> - <right>
//
// The severity segment is padded to a fixed width whether shown or not.
func formatResult(step string, outcome check.Outcome, level severity.Level, left, right string) string {
	var sev string
	if outcome.Notable() {
		sev = " - Severity: " + level.String()
	}
	return fmt.Sprintf("%-*s - %-*s%-*s - %s - %s",
		stepWidth, step, outcomeWidth, outcome, severityWidth, sev, left, right)
}

// formatPrecondition renders the line for a step rejected before or while
// its functions were called.
func formatPrecondition(step string, err error) string {
	return fmt.Sprintf("%-*s - %-*s - Severity: %-11s - Assertion error occurred %v",
		stepWidth, step, outcomeWidth, check.Error, severity.Error, err)
}

// formatUncaught renders the line for a step that failed unexpectedly.
func formatUncaught(step string) string {
	return fmt.Sprintf("%-*s Uncaught error occurred for check", stepWidth, step)
}
