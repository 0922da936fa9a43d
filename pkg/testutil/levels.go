package testutil

import (
	"fmt"
	"path/filepath"
)

// Level is one package directory of a nested dependency tree
type Level struct {
	Dir string
	Bin string
}

// NodeModules creates count nested levels under dir:
//
//	<dir>/node_modules/.bin
//	<dir>/node_modules/level1/node_modules/.bin
//	<dir>/node_modules/level1/node_modules/level2/node_modules/.bin
//
// Level 0 is dir itself.
func (e *TestEnvironment) NodeModules(dir string, count int) []Level {
	e.t.Helper()

	levels := make([]Level, 0, count)
	for i := 0; i < count; i++ {
		if i > 0 {
			dir = filepath.Join(dir, "node_modules", fmt.Sprintf("level%d", i))
		}
		bin := filepath.Join(dir, "node_modules", ".bin")
		levels = append(levels, Level{Dir: dir, Bin: e.Dir(relTo(e.Root, bin))})
	}
	return levels
}

func relTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
