package check

import (
	"math"
	"reflect"
)

// DefaultWarningThreshold is the largest rounded difference still reported
// as a Warning instead of a failure.
const DefaultWarningThreshold = 0.1001

// Compare classifies a and b. Neither numeric is an Error, exactly one
// numeric is a Failed comparison. Two numbers are rounded to significance
// digits and then compared for equality, then against warningThreshold.
func Compare(a, b any, significance int, warningThreshold float64) Outcome {
	fa, okA := AsNumber(a)
	fb, okB := AsNumber(b)

	switch {
	case !okA && !okB:
		return Error
	case !okA || !okB:
		return Failed
	}

	fa = Round(fa, significance)
	fb = Round(fb, significance)

	switch {
	case fa == fb:
		return Success
	case math.Abs(fa-fb) <= warningThreshold:
		return Warning
	default:
		return Failed
	}
}

// AsNumber converts any Go integer, unsigned integer or float kind to a
// float64. Bools, strings, nil and nil pointers are not numbers.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case int:
		return float64(n), true
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return 0, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// Round rounds x to digits decimal places, half away from zero. Negative
// digits round to tens, hundreds and so on.
func Round(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	scale := math.Pow(10, float64(digits))
	scaled := x * scale
	if math.IsInf(scaled, 0) {
		return x
	}
	return math.Round(scaled) / scale
}
