package filesystem

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/sdcops/pkg/types"
)

// maxLinkHops bounds symlink chains followed by ResolveSymlinks.
const maxLinkHops = 255

// linkResolver is implemented by filesystems that know about symlinks.
type linkResolver interface {
	EvalSymlinks(path string) (string, error)
}

// ResolveSymlinks returns the file path refers to once every symlink is
// followed. Filesystems without symlink support return path unchanged.
// Writes that replace a file by rename must target the resolved path, or
// they swap out the link instead of updating the file behind it.
func ResolveSymlinks(fsys types.FS, path string) (string, error) {
	if r, ok := fsys.(linkResolver); ok {
		return r.EvalSymlinks(path)
	}
	return path, nil
}

// followLinks walks a symlink chain with lstat and readlink callbacks.
func followLinks(path string, isLink func(string) (bool, error), readlink func(string) (string, error)) (string, error) {
	for hop := 0; hop < maxLinkHops; hop++ {
		link, err := isLink(path)
		if err != nil {
			return "", err
		}
		if !link {
			return path, nil
		}

		target, err := readlink(path)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
		path = target
	}
	return "", fmt.Errorf("too many levels of symbolic links: %s", path)
}
