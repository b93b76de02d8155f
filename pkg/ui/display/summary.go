// Package display converts operation results into a format-neutral summary
// shared by the human-readable renderers.
package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/sdcops/pkg/pipeline"
	"github.com/arthur-debert/sdcops/pkg/properties"
	"gopkg.in/yaml.v3"
)

// Status is the headline state of a summary.
type Status string

const (
	StatusChanged Status = "changed"
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusDryRun  Status = "dry-run"
	StatusError   Status = "error"
)

// Field is one labelled line of a summary.
type Field struct {
	Key   string
	Value string
}

// Summary is what the text and terminal renderers print.
type Summary struct {
	Status  Status
	Subject string
	Fields  []Field
	// Diff is a unified diff, printed verbatim.
	Diff string
	// Body is free-form detail printed after the fields.
	Body string
}

// Summarize builds a summary for the result types sdcops produces.
// It reports false for anything else.
func Summarize(result interface{}) (*Summary, bool) {
	switch v := result.(type) {
	case *properties.Result:
		return fromProperty(v), true
	case *pipeline.Outcome:
		return fromOutcome(v), true
	default:
		return nil, false
	}
}

func fromProperty(r *properties.Result) *Summary {
	s := &Summary{
		Status:  StatusOK,
		Subject: fmt.Sprintf("%s in %s", r.Parameter, r.Dest),
		Diff:    r.Diff,
	}
	switch {
	case r.DryRun && r.Changed:
		s.Status = StatusDryRun
	case r.Changed:
		s.Status = StatusChanged
	}

	if r.Changed {
		s.Fields = append(s.Fields, Field{"value", fmt.Sprintf("%s -> %s", quote(r.OldValue), quote(r.NewValue))})
	} else {
		s.Fields = append(s.Fields, Field{"value", quote(r.NewValue)})
	}
	if r.BackupPath != "" {
		s.Fields = append(s.Fields, Field{"backup", r.BackupPath})
	}
	s.Fields = append(s.Fields, Field{"checksum", r.Checksum})
	return s
}

func fromOutcome(o *pipeline.Outcome) *Summary {
	s := &Summary{
		Status:  StatusOK,
		Subject: o.Action.String(),
	}
	if o.Pipeline != "" {
		s.Subject += " " + o.Pipeline
	}

	switch {
	case o.DryRun:
		s.Status = StatusDryRun
	case o.Skipped:
		s.Status = StatusSkipped
	case o.Changed:
		s.Status = StatusChanged
	}

	if o.Reason != "" {
		s.Fields = append(s.Fields, Field{"reason", o.Reason})
	}
	s.Fields = append(s.Fields, Field{"command", o.Command})

	switch r := o.Result.(type) {
	case nil:
	case string:
		s.Body = strings.TrimRight(r, "\n")
	default:
		s.Body = toYAML(r)
	}
	return s
}

// toYAML renders decoded JSON as YAML, which reads better in a terminal.
func toYAML(v interface{}) string {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimRight(string(data), "\n")
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
