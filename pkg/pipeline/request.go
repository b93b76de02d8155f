package pipeline

import (
	"github.com/arthur-debert/sdcops/pkg/errors"
)

// Connection holds the Data Collector endpoint and credentials passed to
// the CLI.
type Connection struct {
	URL      string
	AuthType AuthType
	User     string
	Password string
}

// Request describes one pipeline action.
type Request struct {
	Action     Action
	Pipeline   string
	Src        string
	Dest       string
	Connection Connection
	DryRun     bool
}

// Validate checks the fields each action requires.
func (r Request) Validate() error {
	if !r.Action.Valid() {
		return errors.Newf(errors.ErrInvalidInput, "unknown action %q", r.Action).
			WithDetail("choices", Actions())
	}
	if r.Action.RequiresPipeline() && r.Pipeline == "" {
		return errors.New(errors.ErrInvalidInput, "pipeline must be specified for this action").
			WithDetail("action", r.Action)
	}
	if r.Action == ActionImport && r.Src == "" {
		return errors.New(errors.ErrInvalidInput, "src must be specified when importing a pipeline")
	}
	if r.Action == ActionExport && r.Dest == "" {
		return errors.New(errors.ErrInvalidInput, "dest must be specified when exporting a pipeline")
	}
	if r.Connection.URL == "" {
		return errors.New(errors.ErrInvalidInput, "data collector URL must be specified")
	}
	if !r.Connection.AuthType.Valid() {
		return errors.Newf(errors.ErrInvalidInput, "unknown auth type %q", r.Connection.AuthType)
	}
	return nil
}
