package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSettings_Defaults(t *testing.T) {
	s, err := ResolveSettings(nil)
	require.NoError(t, err)
	assert.Equal(t, Settings{
		Significance: 2,
		CheckName:    "General Checks",
		Logger:       "ResultsFunFactory",
	}, s)
}

func TestResolveSettings_Overrides(t *testing.T) {
	s, err := ResolveSettings(map[string]any{
		KeySignificance:  float64(3),
		KeyCheckName:     "Revenue",
		KeyLogger:        "revenue",
		KeyStopRunOnFail: true,
		KeySkipFile:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, Settings{
		Significance:  3,
		CheckName:     "Revenue",
		Logger:        "revenue",
		StopRunOnFail: true,
		SkipFile:      true,
	}, s)
}

func TestResolveSettings_Invalid(t *testing.T) {
	_, err := ResolveSettings(map[string]any{
		KeySignificance:  2.5,
		KeyStopRunOnFail: "yes",
		"stop_on_fail":   true,
		KeyLogger:        "../escape",
	})
	require.ErrorIs(t, err, ErrInvalidSettings)
	msg := err.Error()
	assert.Contains(t, msg, "significance: expected an integer")
	assert.Contains(t, msg, "stop_run_on_fail: expected a bool")
	assert.Contains(t, msg, "stop_on_fail: unknown key")
	assert.Contains(t, msg, "logger: must be a non-empty name")
}

func TestResolveSettings_NegativeSignificance(t *testing.T) {
	_, err := ResolveSettings(map[string]any{KeySignificance: -1})
	require.ErrorIs(t, err, ErrInvalidSettings)
}

func TestPipeline_FuncRefs(t *testing.T) {
	p := &Pipeline{Steps: []*Step{
		{Name: "a", Attributes: map[string]any{KeyFuncLeft: "x", KeyFuncRight: "y"}},
		{Name: "b", Attributes: map[string]any{KeyFuncLeft: 3}},
	}}
	assert.Equal(t, []string{"x", "y"}, p.FuncRefs())
}
