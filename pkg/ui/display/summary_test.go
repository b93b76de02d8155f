package display

import (
	"testing"

	"github.com/arthur-debert/sdcops/pkg/pipeline"
	"github.com/arthur-debert/sdcops/pkg/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeProperty(t *testing.T) {
	tests := []struct {
		name       string
		result     properties.Result
		wantStatus Status
	}{
		{"changed", properties.Result{Changed: true}, StatusChanged},
		{"unchanged", properties.Result{}, StatusOK},
		{"dry run change", properties.Result{Changed: true, DryRun: true}, StatusDryRun},
		{"dry run without change", properties.Result{DryRun: true}, StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := Summarize(&tt.result)
			require.True(t, ok)
			assert.Equal(t, tt.wantStatus, s.Status)
		})
	}
}

func TestSummarizePropertyFields(t *testing.T) {
	s, ok := Summarize(&properties.Result{
		Dest:       "/etc/sdc/sdc.properties",
		Parameter:  "http.port",
		OldValue:   "1",
		NewValue:   "2",
		Changed:    true,
		BackupPath: "/etc/sdc/sdc.properties.bak",
	})
	require.True(t, ok)

	assert.Equal(t, "http.port in /etc/sdc/sdc.properties", s.Subject)
	assert.Contains(t, s.Fields, Field{"value", `"1" -> "2"`})
	assert.Contains(t, s.Fields, Field{"backup", "/etc/sdc/sdc.properties.bak"})
}

func TestSummarizeOutcome(t *testing.T) {
	t.Run("skipped", func(t *testing.T) {
		s, ok := Summarize(&pipeline.Outcome{
			Action:   pipeline.ActionImport,
			Pipeline: "p1",
			Skipped:  true,
			Reason:   "pipeline already exists",
			Result:   "CONTAINER_0201\n",
		})
		require.True(t, ok)
		assert.Equal(t, StatusSkipped, s.Status)
		assert.Equal(t, "import p1", s.Subject)
		assert.Equal(t, "CONTAINER_0201", s.Body)
	})

	t.Run("json result rendered as yaml", func(t *testing.T) {
		s, ok := Summarize(&pipeline.Outcome{
			Action:  pipeline.ActionStatus,
			Changed: true,
			Result:  map[string]any{"status": "RUNNING"},
		})
		require.True(t, ok)
		assert.Equal(t, StatusChanged, s.Status)
		assert.Equal(t, "status: RUNNING", s.Body)
	})

	t.Run("dry run", func(t *testing.T) {
		s, ok := Summarize(&pipeline.Outcome{Action: pipeline.ActionList, DryRun: true, Result: pipeline.DryRunResult})
		require.True(t, ok)
		assert.Equal(t, StatusDryRun, s.Status)
	})
}

func TestSummarizeUnknown(t *testing.T) {
	_, ok := Summarize(map[string]string{})
	assert.False(t, ok)
}
