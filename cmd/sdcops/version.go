package sdcops

import (
	"fmt"

	versioncmd "github.com/arthur-debert/sdcops/cmd/sdcops/commands/version"
	"github.com/arthur-debert/sdcops/pkg/ui"
	"github.com/spf13/cobra"
)

func (a *app) newVersionCmd() *cobra.Command {
	cmd := versioncmd.NewCommand()
	cmd.Args = usageArgs(cobra.NoArgs)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		info := versioncmd.Current()
		if a.format == ui.FormatJSON || a.format == ui.FormatYAML {
			return a.render(info)
		}
		_, err := fmt.Fprintf(a.stdout, "sdcops version %s\n  commit: %s\n  built:  %s\n",
			info.Version, info.Commit, info.Date)
		return err
	}
	return cmd
}
