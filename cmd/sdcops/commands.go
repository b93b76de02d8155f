package sdcops

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/sdcops/internal/version"
	"github.com/arthur-debert/sdcops/pkg/cobrax/topics"
	"github.com/arthur-debert/sdcops/pkg/config"
	"github.com/arthur-debert/sdcops/pkg/errors"
	"github.com/arthur-debert/sdcops/pkg/logging"
	"github.com/arthur-debert/sdcops/pkg/pipeline"
	"github.com/arthur-debert/sdcops/pkg/types"
	"github.com/arthur-debert/sdcops/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// configFlags maps command-line flags to the config keys they override.
var configFlags = map[string]string{
	"output":    "output",
	"dist":      "dist",
	"url":       "connection.url",
	"auth-type": "connection.auth_type",
	"user":      "connection.user",
	"password":  "connection.password",
}

// app holds the state shared by every command of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	verbosity  int
	dryRun     bool
	diff       bool
	output     string
	configFile string

	cfg    *config.Config
	format ui.Format
	ready  bool

	// Nil means the real filesystem and os/exec.
	fs     types.FS
	runner pipeline.Runner
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr, format: ui.FormatAuto}
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newApp(os.Stdout, os.Stderr).rootCmd()
}

// Run executes the CLI with args and returns the process exit code.
// Errors are rendered in the selected output format before returning.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return newApp(stdout, stderr).execute(ctx, args)
}

func (a *app) execute(ctx context.Context, args []string) int {
	rootCmd := a.rootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		// Flag and argument errors are raised before setup runs.
		if !a.ready {
			a.lateSetup()
		}
		log.Debug().Err(err).Msg("Command failed")
		a.renderError(err)
	}
	return ExitCode(err)
}

// ExitCode maps an error to the process exit status: 0 on success, 2 when
// the input was rejected and 1 for every other failure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.IsValidation(err):
		return 2
	default:
		return 1
	}
}

func (a *app) rootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:               "sdcops",
		Short:             MsgRootShort,
		Long:              MsgRootLong,
		Version:           version.Version,
		Args:              usageArgs(cobra.NoArgs),
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.BoolVar(&a.dryRun, "dry-run", false, MsgFlagDryRun+" (alias --check)")
	pf.BoolVar(&a.diff, "diff", false, MsgFlagDiff)
	pf.StringVarP(&a.output, "output", "o", "", MsgFlagOutput)
	pf.StringVar(&a.configFile, "config", "", MsgFlagConfig)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid flag")
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "config", Title: "CONFIGURATION:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newSetCmd())
	rootCmd.AddCommand(a.newPipelineCmd())
	rootCmd.AddCommand(a.newGenConfigCmd())
	rootCmd.AddCommand(a.newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// --check is the Ansible spelling of --dry-run
	rootCmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "check" {
			name = "dry-run"
		}
		return pflag.NormalizedName(name)
	})

	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(!stdoutIsTerminal()),
	}
	if err := topics.InitializeWithOptions(rootCmd, helpTopics, helpTopicsRoot, opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// setup runs before every command. Configuration is loaded lazily by the
// commands that need it so a broken config file never blocks help.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	logging.SetupLogger(a.verbosity)
	a.ready = true
	log.Debug().Str("command", cmd.Name()).Msg("Command started")

	if a.output != "" {
		format, err := ui.ParseFormat(a.output)
		if err != nil {
			return err
		}
		a.format = format
	}
	return nil
}

// lateSetup applies the logging and output flags that were parsed when
// cobra failed before reaching setup. An invalid --output keeps the
// detected format.
func (a *app) lateSetup() {
	logging.SetupLogger(a.verbosity)
	a.ready = true
	if a.output == "" {
		return
	}
	if format, err := ui.ParseFormat(a.output); err == nil {
		a.format = format
	}
}

// loadConfig resolves the configuration, letting flags set on cmd win.
func (a *app) loadConfig(cmd *cobra.Command) error {
	overrides := make(map[string]interface{})
	for flag, key := range configFlags {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: a.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}

	format, err := ui.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.format = format
	return nil
}

// render writes a result to stdout in the selected format.
func (a *app) render(result interface{}) error {
	r, err := ui.NewRenderer(a.format, a.stdout)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot create renderer")
	}
	return r.RenderResult(result)
}

func (a *app) message(msg string) error {
	r, err := ui.NewRenderer(a.format, a.stdout)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot create renderer")
	}
	return r.RenderMessage(msg)
}

// renderError prints err. Structured formats go to stdout so scripts read
// one document either way; human formats go to stderr.
func (a *app) renderError(err error) {
	w := a.stderr
	if a.format == ui.FormatJSON || a.format == ui.FormatYAML {
		w = a.stdout
	}

	r, rerr := ui.NewRenderer(a.format, w)
	if rerr == nil {
		rerr = r.RenderError(err)
	}
	if rerr != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
	}
}

// usageArgs marks positional argument errors as invalid input.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return errors.Wrap(err, errors.ErrInvalidInput, "invalid arguments").
				WithDetail("usage", cmd.UseLine())
		}
		return nil
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Name() == "help" {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return errors.New(errors.ErrInternal, MsgErrHelpNotFound)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  usageArgs(cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
