package pipeline

import (
	"context"
	"os/exec"
)

// Runner executes a command and returns its combined stdout and stderr.
// The returned error reports whether the process could be run; callers
// decide what a non-zero exit status means.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run executes name with args, capturing stdout and stderr into one stream.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}
