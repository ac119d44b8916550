package runner

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/specialistvlad/funcgrid/internal/check"
	"github.com/specialistvlad/funcgrid/internal/severity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outcome(o check.Outcome) *check.Outcome { return &o }

func sampleReport() *Report {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &Report{
		RunID:      uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2"),
		StartedAt:  start,
		FinishedAt: start.Add(1500 * time.Millisecond),
		Files: []FileReport{
			{
				Source:    "sales.yaml",
				CheckName: "Sales",
				Stream:    "Sales",
				Status:    StatusCompleted,
				Steps: []StepReport{
					{Name: "a", Outcome: outcome(check.Success), Severity: severity.Error},
					{Name: "b", Outcome: outcome(check.Warning), Severity: severity.Error},
					{Name: "c", Severity: severity.Critical, Error: "boom"},
				},
				Combined: outcome(check.Success),
			},
			{Source: "skip.yaml", Status: StatusSkipped},
		},
	}
}

func TestReport_Counts(t *testing.T) {
	r := sampleReport()

	assert.Equal(t, map[Status]int{StatusCompleted: 1, StatusSkipped: 1}, r.StatusCounts())
	assert.Equal(t, map[string]int{"SUCCESS": 1, "WARNING": 1, "UNCAUGHT": 1}, r.OutcomeCounts())
	assert.True(t, r.Failed())

	r.Files[0].Steps = r.Files[0].Steps[:2]
	assert.False(t, r.Failed())
}

func TestReport_WriteSummary(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, sampleReport().WriteSummary(&buf))

	out := buf.String()
	assert.Contains(t, out, "Run 7d444840-9dc0-11d1-b245-5ffdce74fad2 (1.5s)")
	assert.Regexp(t, `sales\.yaml\s+Sales\s+completed\s+3\s+SUCCESS`, out)
	assert.Regexp(t, `skip\.yaml\s+skipped\s+0\s+-`, out)
	assert.Regexp(t, `SUCCESS=1\s+WARNING=1\s+FAILED=0\s+ERROR=0\s+UNCAUGHT=1`, out)
}

func TestReport_JSON(t *testing.T) {
	data, err := json.Marshal(sampleReport())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	files := decoded["files"].([]any)
	first := files[0].(map[string]any)
	steps := first["steps"].([]any)

	assert.Equal(t, "7d444840-9dc0-11d1-b245-5ffdce74fad2", decoded["run_id"])
	assert.Equal(t, "SUCCESS", first["combined"])
	assert.Equal(t, "ERROR", steps[0].(map[string]any)["severity"])
	assert.Nil(t, steps[2].(map[string]any)["outcome"])
	assert.Equal(t, "boom", steps[2].(map[string]any)["error"])
}
