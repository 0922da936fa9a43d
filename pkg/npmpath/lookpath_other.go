//go:build !windows

package npmpath

import "github.com/arthur-debert/npmpath/pkg/types"

func executableExts(string) []string {
	return nil
}

// findExecutable accepts a regular file with any execute bit set
func findExecutable(fsys types.FS, path string, _ []string) (string, bool) {
	info, err := fsys.Stat(path)
	if err != nil {
		return "", false
	}
	if mode := info.Mode(); !mode.IsDir() && mode&0o111 != 0 {
		return path, true
	}
	return "", false
}
