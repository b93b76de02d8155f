package genconfig

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the gen-config command
// The run function is wired by the root command, which owns config and output
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "config",
		Args:    cobra.NoArgs,
	}

	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)
	cmd.Flags().Bool("force", false, MsgFlagForce)
	cmd.Flags().Bool("resolved", false, MsgFlagResolved)
	cmd.Flags().Bool("show-secrets", false, MsgFlagShowSecrets)

	return cmd
}
