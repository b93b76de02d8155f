package pipeline

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sdcops/pkg/errors"
	"github.com/arthur-debert/sdcops/pkg/filesystem"
	"github.com/arthur-debert/sdcops/pkg/logging"
	"github.com/arthur-debert/sdcops/pkg/types"
	"github.com/rs/zerolog"
)

// DryRunResult is reported as the result of an action that was not run.
const DryRunResult = "Not run in check mode."

const maskedPassword = "********"

// Outcome reports what an action did.
type Outcome struct {
	Action   Action `json:"action" yaml:"action"`
	Pipeline string `json:"pipeline,omitempty" yaml:"pipeline,omitempty"`
	Changed  bool   `json:"changed" yaml:"changed"`
	Skipped  bool   `json:"skipped" yaml:"skipped"`
	DryRun   bool   `json:"dry_run" yaml:"dry_run"`
	Reason   string `json:"reason,omitempty" yaml:"reason,omitempty"`
	// Command is the command line with the password masked.
	Command string `json:"command" yaml:"command"`
	// Args is the full argument list, including credentials.
	Args      []string `json:"-" yaml:"-"`
	RawOutput string   `json:"raw_output,omitempty" yaml:"raw_output,omitempty"`
	Result    any      `json:"result" yaml:"result"`
}

// Options contains configuration for the invoker
type Options struct {
	// Dist is the Data Collector installation directory.
	Dist   string
	Runner Runner
	// Filesystem operations interface for testing
	FS     types.FS
	Logger zerolog.Logger
}

// Invoker runs pipeline actions through the streamsets CLI.
type Invoker struct {
	dist   string
	runner Runner
	fs     types.FS
	logger zerolog.Logger
}

// New creates a new invoker instance
func New(opts Options) *Invoker {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("pipeline")
	}

	runner := opts.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	return &Invoker{
		dist:   opts.Dist,
		runner: runner,
		fs:     fsys,
		logger: logger,
	}
}

// Executable returns the path of the streamsets CLI.
func (i *Invoker) Executable() string {
	return filepath.Join(i.dist, "bin", "streamsets")
}

// BuildCommand composes the executable and arguments for req.
func (i *Invoker) BuildCommand(req Request) (string, []string) {
	args := []string{
		"cli",
		"--auth-type", string(req.Connection.AuthType),
		"--url", req.Connection.URL,
		"--user", req.Connection.User,
		"--password", req.Connection.Password,
	}
	args = append(args, req.Action.Subcommand()...)

	if req.Pipeline != "" {
		args = append(args, "--name", req.Pipeline)
	}
	if req.Src != "" {
		args = append(args, "--file", req.Src)
	}
	if req.Dest != "" {
		args = append(args, "--file", req.Dest)
	}

	return i.Executable(), args
}

// Invoke validates req, runs the composed command and classifies its output.
func (i *Invoker) Invoke(ctx context.Context, req Request) (*Outcome, error) {
	logger, _ := logging.WithInvocation(i.logger)
	logger = logger.With().
		Str("action", string(req.Action)).
		Str("pipeline", req.Pipeline).
		Bool("dryRun", req.DryRun).
		Logger()
	done := logging.LogOperationStart(logger, "pipeline.invoke")
	defer done()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := i.checkDist(); err != nil {
		return nil, err
	}

	name, args := i.BuildCommand(req)
	masked := maskPassword(args)

	outcome := &Outcome{
		Action:   req.Action,
		Pipeline: req.Pipeline,
		DryRun:   req.DryRun,
		Command:  strings.Join(append([]string{name}, masked...), " "),
		Args:     args,
	}

	if req.DryRun {
		logger.Info().Str("command", outcome.Command).Msg("Dry run - command not executed")
		outcome.Result = DryRunResult
		return outcome, nil
	}

	logging.LogCommand(logger, name, masked)
	output, runErr := i.runner.Run(ctx, name, args...)
	outcome.RawOutput = string(output)

	if runErr != nil {
		var exitErr *exec.ExitError
		if ctx.Err() != nil || !errors.As(runErr, &exitErr) {
			return nil, errors.Wrapf(runErr, errors.ErrActionExecute, "cannot run %s", name).
				WithDetail("command", outcome.Command).
				WithDetail("output", outcome.RawOutput)
		}
		// The CLI's exit status does not say whether the action worked.
		logger.Debug().Int("exitCode", exitErr.ExitCode()).Msg("CLI exited with non-zero status")
	}

	verdict, err := Classify(output)
	if err != nil {
		logger.Error().Str("output", outcome.RawOutput).Msg("Unrecognized CLI output")
		if sdcErr, ok := err.(*errors.SdcError); ok {
			sdcErr.WithDetail("command", outcome.Command).WithDetail("action", string(req.Action))
		}
		return nil, err
	}

	outcome.Changed = verdict.Changed
	outcome.Skipped = verdict.Skipped
	outcome.Reason = verdict.Reason
	outcome.Result = verdict.Result

	logger.Info().
		Bool("changed", outcome.Changed).
		Bool("skipped", outcome.Skipped).
		Str("reason", outcome.Reason).
		Msg("Pipeline action completed")

	return outcome, nil
}

// checkDist checks that the installation directory is set and exists.
func (i *Invoker) checkDist() error {
	if i.dist == "" {
		return errors.New(errors.ErrInvalidInput,
			"data collector installation directory is not set; set dist in the config or SDC_DIST")
	}
	exists, err := filesystem.Exists(i.fs, i.dist)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", i.dist)
	}
	if !exists {
		return errors.Newf(errors.ErrInvalidInput, "path '%s' does not exist", i.dist)
	}
	return nil
}

// maskPassword returns a copy of args with the --password value hidden.
func maskPassword(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for n := 0; n < len(out)-1; n++ {
		if out[n] == "--password" {
			out[n+1] = maskedPassword
			n++
		}
	}
	return out
}
