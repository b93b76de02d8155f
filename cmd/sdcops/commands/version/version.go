// Package version implements the version command
package version

import (
	"github.com/arthur-debert/sdcops/internal/version"
	"github.com/spf13/cobra"
)

// MsgShort describes the version command
const MsgShort = "Print version information"

// Info is the rendered build information
type Info struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

// Current returns the build information of this binary
func Current() Info {
	return Info{
		Version: version.Version,
		Commit:  version.Commit,
		Date:    version.Date,
	}
}

// NewCommand creates the version command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
	}
}
