package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	var out bytes.Buffer

	cfg, exit, err := Parse([]string{
		"--results-dir", "out",
		"--log-level", "DEBUG",
		"--log-format", "json",
		"--healthcheck-port", "8080",
		"--database-url", "postgres://localhost/db",
		"--no-builtins",
		"a.yaml", "checks",
	}, &out)

	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, []string{"a.yaml", "checks"}, cfg.Paths)
	assert.Equal(t, "out", cfg.ResultsDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 8080, cfg.HealthcheckPort)
	assert.Equal(t, "postgres://localhost/db", cfg.DatabaseURL)
	assert.True(t, cfg.NoBuiltins)
}

func TestParse_Defaults(t *testing.T) {
	cfg, _, err := Parse([]string{"a.yaml"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "./logs", cfg.ResultsDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.NoBuiltins)
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	var out bytes.Buffer

	cfg, exit, err := Parse(nil, &out)

	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{name: "bad format", args: []string{"--log-format", "xml", "a.yaml"}, want: "invalid log-format"},
		{name: "bad level", args: []string{"--log-level", "loud", "a.yaml"}, want: "invalid log-level"},
		{name: "bad port", args: []string{"--healthcheck-port", "-1", "a.yaml"}, want: "healthcheck port out of range"},
		{name: "unknown flag", args: []string{"--workers", "3"}, want: "flag provided but not defined"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.want)
		})
	}
}
