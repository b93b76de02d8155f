package sdcops

import (
	"github.com/arthur-debert/sdcops/cmd/sdcops/commands/set"
	"github.com/arthur-debert/sdcops/pkg/errors"
	"github.com/arthur-debert/sdcops/pkg/paths"
	"github.com/arthur-debert/sdcops/pkg/properties"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) newSetCmd() *cobra.Command {
	cmd := set.NewCommand()
	cmd.Args = usageArgs(cobra.ExactArgs(2))
	cmd.RunE = a.runSet
	return cmd
}

func (a *app) runSet(cmd *cobra.Command, args []string) error {
	if err := a.loadConfig(cmd); err != nil {
		return err
	}

	dest, _ := cmd.Flags().GetString("dest")
	backup, _ := cmd.Flags().GetBool("backup")
	if dest == "" {
		dest = a.cfg.PropertiesPath()
	}
	if dest == "" {
		return errors.New(errors.ErrInvalidInput, set.MsgErrNoDest)
	}

	log.Info().
		Str("dest", dest).
		Str("parameter", args[0]).
		Bool("dryRun", a.dryRun).
		Msg("Setting property")

	mutator := properties.New(properties.Options{FS: a.fs})
	result, err := mutator.Apply(properties.Request{
		Dest:      paths.ExpandHome(dest),
		Parameter: args[0],
		Value:     args[1],
		Backup:    backup,
		DryRun:    a.dryRun,
		Diff:      a.diff,
	})
	if err != nil {
		return err
	}

	return a.render(result)
}
