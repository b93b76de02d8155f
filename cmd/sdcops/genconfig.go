package sdcops

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/sdcops/cmd/sdcops/commands/genconfig"
	"github.com/arthur-debert/sdcops/pkg/config"
	"github.com/arthur-debert/sdcops/pkg/errors"
	"github.com/arthur-debert/sdcops/pkg/filesystem"
	"github.com/arthur-debert/sdcops/pkg/paths"
	"github.com/spf13/cobra"
)

func (a *app) newGenConfigCmd() *cobra.Command {
	cmd := genconfig.NewCommand()
	cmd.Args = usageArgs(cobra.NoArgs)
	cmd.RunE = a.runGenConfig
	return cmd
}

func (a *app) runGenConfig(cmd *cobra.Command, args []string) error {
	write, _ := cmd.Flags().GetBool("write")
	force, _ := cmd.Flags().GetBool("force")
	resolved, _ := cmd.Flags().GetBool("resolved")
	showSecrets, _ := cmd.Flags().GetBool("show-secrets")

	content := config.GenerateTemplate()
	if resolved {
		if err := a.loadConfig(cmd); err != nil {
			return err
		}
		var err error
		if content, err = config.Generate(a.cfg, showSecrets); err != nil {
			return err
		}
	}

	if !write {
		_, err := fmt.Fprint(a.stdout, content)
		return err
	}

	path := a.configFile
	if path == "" {
		path = paths.ConfigFilePath()
	}
	path = paths.ExpandHome(path)

	fsys := a.fs
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	exists, err := filesystem.Exists(fsys, path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
	}
	if exists && !force {
		return errors.Newf(errors.ErrInvalidInput, genconfig.MsgErrFileExists, path)
	}

	if a.dryRun {
		return a.message(fmt.Sprintf(genconfig.MsgWouldWrite, path))
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot create %s", filepath.Dir(path))
	}
	if err := filesystem.AtomicWrite(fsys, path, []byte(content), 0600); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
	}

	return a.message(fmt.Sprintf(genconfig.MsgWritten, path))
}
