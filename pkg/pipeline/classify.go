package pipeline

import (
	"encoding/json"
	"strings"

	"github.com/arthur-debert/sdcops/pkg/errors"
)

// Sentinel is an error code in CLI output that marks a request as already
// satisfied.
type Sentinel struct {
	Code   string
	Reason string
}

// Sentinels are the no-op codes recognized in CLI output.
var Sentinels = []Sentinel{
	{Code: "CONTAINER_0201", Reason: "pipeline already exists"},
	{Code: "CONTAINER_0102", Reason: "pipeline already in the requested state"},
	{Code: "CONTAINER_0166", Reason: "pipeline already in the requested state"},
}

// Classification is the verdict on one CLI output.
type Classification struct {
	Changed bool
	Skipped bool
	Reason  string
	// Result is the decoded JSON for a change, or the raw output for a no-op.
	Result any
}

// Classify decides the outcome of a CLI run from its output alone.
//
// Every sentinel is checked for its presence in the output. Output that is
// neither JSON nor carries a sentinel is an ACTION_EXECUTE error.
func Classify(output []byte) (*Classification, error) {
	var parsed any
	if err := json.Unmarshal(output, &parsed); err == nil {
		return &Classification{Changed: true, Result: parsed}, nil
	}

	raw := string(output)
	if s, ok := findSentinel(raw); ok {
		return &Classification{Skipped: true, Reason: s.Reason, Result: raw}, nil
	}

	msg := "streamsets cli produced no output"
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		msg = "unrecognized output from streamsets cli: " + trimmed
	}
	return nil, errors.New(errors.ErrActionExecute, msg).
		WithDetail("output", raw)
}

func findSentinel(output string) (Sentinel, bool) {
	for _, s := range Sentinels {
		if strings.Contains(output, s.Code) {
			return s, true
		}
	}
	return Sentinel{}, false
}
