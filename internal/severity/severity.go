// Package severity maps the severity level attached to a step onto the
// action an operator is expected to take when that step does not pass.
package severity

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel is returned for integers outside the known levels.
var ErrInvalidLevel = errors.New("invalid severity level")

// Level is the operational weight of a failing step.
type Level int

const (
	Verbose     Level = 0
	Information Level = 1
	Warning     Level = 2
	Error       Level = 3
	Critical    Level = 4
)

var names = map[Level]string{
	Verbose:     "VERBOSE",
	Information: "INFORMATION",
	Warning:     "WARNING",
	Error:       "ERROR",
	Critical:    "CRITICAL",
}

var actions = map[Level]string{
	Critical:    "Pause data run: needs to be fixed before proceeding",
	Error:       "Inform Backend, data run can proceed",
	Warning:     "No Action (known to fail)",
	Information: "No Action (Check switched off)",
	Verbose:     "No Action (Check switched off)",
}

// Parse validates an integer as a Level.
func Parse(n int) (Level, error) {
	l := Level(n)
	if _, ok := names[l]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, n)
	}
	return l, nil
}

// String returns the upper-case label of the level.
func (l Level) String() string {
	if name, ok := names[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Describe returns the required action for a level.
func Describe(l Level) (string, error) {
	action, ok := actions[l]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	return action, nil
}
