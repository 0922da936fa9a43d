package npmpath

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/npmpath/pkg/types"
)

const defaultPathExt = ".com;.exe;.bat;.cmd"

func executableExts(pathExt string) []string {
	if pathExt == "" {
		pathExt = defaultPathExt
	}
	var exts []string
	for _, e := range strings.Split(strings.ToLower(pathExt), ";") {
		if e == "" {
			continue
		}
		if e[0] != '.' {
			e = "." + e
		}
		exts = append(exts, e)
	}
	return exts
}

// findExecutable tries path as given when it already carries a known
// extension, then path plus each extension in order
func findExecutable(fsys types.FS, path string, exts []string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e && isFile(fsys, path) {
			return path, true
		}
	}
	for _, e := range exts {
		if candidate := path + e; isFile(fsys, candidate) {
			return candidate, true
		}
	}
	return "", false
}

func isFile(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}
