package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/npmpath/pkg/types"
	"github.com/spf13/afero"
)

// maxLinkHops bounds symlink chains followed by EvalSymlinks
const maxLinkHops = 255

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

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	// Afero's Lstat is only available on some backends.
	// For MemMapFs, Stat is sufficient.
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}

// EvalSymlinks follows links on the last path element for backends that can
// read links. Backends without links (MemMapFs) only need the path to exist.
func (a *aferoFS) EvalSymlinks(name string) (string, error) {
	if _, ok := a.fs.(*afero.OsFs); ok {
		return filepath.EvalSymlinks(name)
	}

	current := filepath.Clean(name)
	reader, canRead := a.fs.(afero.LinkReader)
	for hop := 0; hop < maxLinkHops; hop++ {
		info, err := a.Lstat(current)
		if err != nil {
			return "", err
		}
		if !canRead || info.Mode()&fs.ModeSymlink == 0 {
			return current, nil
		}
		target, err := reader.ReadlinkIfPossible(current)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(current), target)
		}
		current = filepath.Clean(target)
	}
	return "", &fs.PathError{Op: "evalsymlinks", Path: name, Err: fs.ErrInvalid}
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

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}
