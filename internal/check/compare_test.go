package check

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type meters float32

func TestCompare(t *testing.T) {
	testCases := []struct {
		name         string
		a, b         any
		significance int
		want         Outcome
	}{
		{name: "equal after rounding", a: 10.001, b: 10.002, significance: 2, want: Success},
		{name: "identical integers", a: 42, b: 42, significance: 0, want: Success},
		{name: "mixed int and float", a: 3, b: 3.004, significance: 2, want: Success},
		{name: "difference above threshold", a: 10.0, b: 10.2, significance: 2, want: Failed},
		{name: "difference within threshold", a: 10.0, b: 10.1, significance: 2, want: Warning},
		{name: "small difference kept by precision", a: 1.001, b: 1.002, significance: 3, want: Warning},
		{name: "nil left", a: nil, b: 5, significance: 2, want: Failed},
		{name: "nil right", a: 5, b: nil, significance: 2, want: Failed},
		{name: "both nil", a: nil, b: nil, significance: 2, want: Error},
		{name: "string and number", a: "5", b: 5, significance: 2, want: Failed},
		{name: "both strings", a: "5", b: "5", significance: 2, want: Error},
		{name: "bools are not numbers", a: true, b: true, significance: 2, want: Error},
		{name: "named float type", a: meters(2.5), b: 2.5, significance: 1, want: Success},
		{name: "unsigned", a: uint8(7), b: int64(7), significance: 0, want: Success},
		{name: "NaN never equals", a: math.NaN(), b: math.NaN(), significance: 2, want: Failed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Compare(tc.a, tc.b, tc.significance, DefaultWarningThreshold)
			assert.Equal(t, tc.want, got, "Compare(%v, %v)", tc.a, tc.b)
		})
	}
}

func TestCompare_SymmetricForNonNumeric(t *testing.T) {
	values := []any{nil, "x", struct{}{}, []int{1}}
	for _, v := range values {
		assert.Equal(t, Compare(v, 1.5, 2, DefaultWarningThreshold), Compare(1.5, v, 2, DefaultWarningThreshold))
		assert.Equal(t, Error, Compare(v, nil, 2, DefaultWarningThreshold))
		assert.Equal(t, Error, Compare(nil, v, 2, DefaultWarningThreshold))
	}
}

func TestCompare_CustomThreshold(t *testing.T) {
	assert.Equal(t, Warning, Compare(10.0, 10.5, 1, 0.5))
	assert.Equal(t, Failed, Compare(10.0, 10.6, 1, 0.5))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.13, Round(0.125, 2))
	assert.Equal(t, -0.13, Round(-0.125, 2))
	assert.Equal(t, 3.0, Round(2.5, 0), "half rounds away from zero")
	assert.Equal(t, 10.0, Round(10.001, 2))
	assert.True(t, math.IsInf(Round(math.Inf(1), 2), 1))
}

func TestAsNumber(t *testing.T) {
	var nilPtr *float64
	v := 4.5

	n, ok := AsNumber(&v)
	assert.True(t, ok)
	assert.Equal(t, 4.5, n)

	_, ok = AsNumber(nilPtr)
	assert.False(t, ok)

	_, ok = AsNumber(map[string]any{})
	assert.False(t, ok)
}
