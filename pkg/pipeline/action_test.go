package pipeline

import (
	"testing"

	"github.com/arthur-debert/sdcops/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	for _, a := range Actions() {
		got, err := ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	got, err := ParseAction(" Start ")
	require.NoError(t, err)
	assert.Equal(t, ActionStart, got)

	_, err = ParseAction("restart")
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestSubcommandReturnsCopy(t *testing.T) {
	tokens := ActionList.Subcommand()
	tokens[0] = "mutated"
	assert.Equal(t, []string{"store", "list"}, ActionList.Subcommand())
}

func TestRequiresPipeline(t *testing.T) {
	for _, a := range Actions() {
		assert.Equal(t, a != ActionList, a.RequiresPipeline(), a.String())
	}
}

func TestParseAuthType(t *testing.T) {
	for _, s := range []string{"none", "basic", "digest", "form", "FORM"} {
		_, err := ParseAuthType(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseAuthType("kerberos")
	assert.True(t, errors.IsValidation(err))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		wantChanged bool
		wantSkipped bool
		wantErr     bool
	}{
		{"json object", `{"status":"RUNNING"}`, true, false, false},
		{"json with surrounding whitespace", "\n  {\"a\":1}\n", true, false, false},
		{"json string", `"ok"`, true, false, false},
		{"sentinel", "CONTAINER_0102 - Pipeline is already running", false, true, false},
		{"second sentinel in output", "warning\nCONTAINER_0166\n", false, true, false},
		{"truncated json", `{"status":`, false, false, true},
		// Output with neither JSON nor a sentinel code is a failure, never a
		// no-op, even though some older tooling reported it as skipped.
		{"plain text", "Usage: streamsets cli [OPTIONS]", false, false, true},
		{"empty", "", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Classify([]byte(tt.output))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsExecution(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, c.Changed)
			assert.Equal(t, tt.wantSkipped, c.Skipped)
		})
	}
}
