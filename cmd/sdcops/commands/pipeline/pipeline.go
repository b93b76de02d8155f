package pipeline

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the pipeline command
// The run function is wired by the root command, which owns config and output
func NewCommand(actions []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "pipeline ACTION",
		Short:     MsgShort,
		Long:      MsgLong,
		Example:   MsgExample,
		GroupID:   "core",
		ValidArgs: actions,
	}

	cmd.Flags().String("name", "", MsgFlagName)
	cmd.Flags().String("src", "", MsgFlagSrc)
	cmd.Flags().String("dest", "", MsgFlagDest)
	cmd.Flags().String("url", "", MsgFlagURL)
	cmd.Flags().String("auth-type", "", MsgFlagAuthType)
	cmd.Flags().String("user", "", MsgFlagUser)
	cmd.Flags().String("password", "", MsgFlagPassword)
	cmd.Flags().String("dist", "", MsgFlagDist)

	_ = cmd.RegisterFlagCompletionFunc("auth-type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"none", "basic", "digest", "form"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
