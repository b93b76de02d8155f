package set

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the set command
// The run function is wired by the root command, which owns config and output
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "set NAME VALUE",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
	}

	cmd.Flags().String("dest", "", MsgFlagDest)
	cmd.Flags().Bool("backup", false, MsgFlagBackup)

	return cmd
}
