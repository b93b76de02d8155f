package properties

import (
	"fmt"

	"github.com/arthur-debert/sdcops/pkg/errors"
	"github.com/arthur-debert/sdcops/pkg/filesystem"
	"github.com/arthur-debert/sdcops/pkg/types"
)

// maxBackups bounds the backup name search.
const maxBackups = 10000

// NextBackupPath returns the first free backup name for dest, trying
// dest.bak, then dest.1.bak, dest.2.bak and so on.
func NextBackupPath(fsys types.FS, dest string) (string, error) {
	candidate := dest + ".bak"
	for n := 1; n <= maxBackups; n++ {
		exists, err := filesystem.Exists(fsys, candidate)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrBackup, "cannot check backup path %s", candidate)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s.%d.bak", dest, n)
	}
	return "", errors.Newf(errors.ErrBackup, "no free backup name for %s after %d attempts", dest, maxBackups).
		WithDetail("dest", dest)
}

// makeBackup moves dest to its next free backup name and returns that name.
func makeBackup(fsys types.FS, dest string) (string, error) {
	backupPath, err := NextBackupPath(fsys, dest)
	if err != nil {
		return "", err
	}
	if err := fsys.Rename(dest, backupPath); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackup, "cannot move %s to %s", dest, backupPath)
	}
	return backupPath, nil
}
