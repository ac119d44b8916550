// Package check classifies a pair of numeric values into a comparison
// outcome. It is a pure leaf package: no logging, no state.
//
// Values are rounded to a caller-supplied number of decimal digits before
// they are compared. Rounding is half away from zero (math.Round applied to
// the scaled value), so 0.125 rounds to 0.13 at two digits.
package check
