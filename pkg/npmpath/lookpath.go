package npmpath

import (
	"os/exec"
	"path/filepath"

	"github.com/arthur-debert/npmpath/pkg/types"
)

// LookPath searches pathList for an executable named file, the way
// exec.LookPath does, but over fsys and an explicit search path. pathExt is
// only consulted on Windows. Relative and empty entries are skipped so the
// result never depends on the working directory.
func LookPath(fsys types.FS, file, pathList, pathExt string) (string, error) {
	if file == "" {
		return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
	}

	exts := executableExts(pathExt)

	if filepath.IsAbs(file) {
		if path, ok := findExecutable(fsys, file, exts); ok {
			return path, nil
		}
		return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
	}

	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" || !filepath.IsAbs(dir) {
			continue
		}
		if path, ok := findExecutable(fsys, filepath.Join(dir, file), exts); ok {
			return path, nil
		}
	}
	return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
}
