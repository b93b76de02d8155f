package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/sdcops/pkg/types"
	"github.com/google/uuid"
)

// AtomicWrite writes data to path through a sibling temp file and a rename,
// so readers see either the old content or the new content, never a
// partially written file.
func AtomicWrite(fsys types.FS, path string, data []byte, perm fs.FileMode) error {
	dir, base := filepath.Split(path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.sdcops-%s.tmp", base, uuid.NewString()[:8]))

	if err := fsys.WriteFile(tmpPath, data, perm); err != nil {
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := fsys.Rename(tmpPath, path); err != nil {
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Exists reports whether path exists. Errors other than "not exist" are
// returned so callers never mistake an unreadable path for a free one.
func Exists(fsys types.FS, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
