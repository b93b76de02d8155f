package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/sdcops/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}

func (a *aferoFS) Rename(oldpath, newpath string) error {
	return a.fs.Rename(oldpath, newpath)
}

func (a *aferoFS) Remove(name string) error {
	return a.fs.Remove(name)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

// EvalSymlinks follows links on afero backends that expose them, such as
// OsFs. MemMapFs has no links and returns path unchanged.
func (a *aferoFS) EvalSymlinks(path string) (string, error) {
	lstater, okStat := a.fs.(afero.Lstater)
	reader, okRead := a.fs.(afero.LinkReader)
	if !okStat || !okRead {
		return path, nil
	}

	isLink := func(p string) (bool, error) {
		info, lstatCalled, err := lstater.LstatIfPossible(p)
		if err != nil {
			return false, err
		}
		return lstatCalled && info.Mode()&fs.ModeSymlink != 0, nil
	}
	return followLinks(path, isLink, reader.ReadlinkIfPossible)
}
