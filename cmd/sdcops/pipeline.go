package sdcops

import (
	pipelinecmd "github.com/arthur-debert/sdcops/cmd/sdcops/commands/pipeline"
	"github.com/arthur-debert/sdcops/pkg/paths"
	"github.com/arthur-debert/sdcops/pkg/pipeline"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) newPipelineCmd() *cobra.Command {
	actions := make([]string, 0, len(pipeline.Actions()))
	for _, action := range pipeline.Actions() {
		actions = append(actions, action.String())
	}

	cmd := pipelinecmd.NewCommand(actions)
	cmd.Args = usageArgs(cobra.ExactArgs(1))
	cmd.RunE = a.runPipeline
	return cmd
}

func (a *app) runPipeline(cmd *cobra.Command, args []string) error {
	action, err := pipeline.ParseAction(args[0])
	if err != nil {
		return err
	}
	if err := a.loadConfig(cmd); err != nil {
		return err
	}
	authType, err := pipeline.ParseAuthType(a.cfg.Connection.AuthType)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	src, _ := cmd.Flags().GetString("src")
	dest, _ := cmd.Flags().GetString("dest")

	log.Info().
		Str("action", action.String()).
		Str("pipeline", name).
		Bool("dryRun", a.dryRun).
		Msg("Running pipeline action")

	invoker := pipeline.New(pipeline.Options{
		Dist:   a.cfg.DistPath(),
		Runner: a.runner,
		FS:     a.fs,
	})
	outcome, err := invoker.Invoke(cmd.Context(), pipeline.Request{
		Action:   action,
		Pipeline: name,
		Src:      paths.ExpandHome(src),
		Dest:     paths.ExpandHome(dest),
		Connection: pipeline.Connection{
			URL:      a.cfg.Connection.URL,
			AuthType: authType,
			User:     a.cfg.Connection.User,
			Password: a.cfg.Connection.Password,
		},
		DryRun: a.dryRun,
	})
	if err != nil {
		return err
	}

	return a.render(outcome)
}
