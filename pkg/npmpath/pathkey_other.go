//go:build !windows

package npmpath

import "github.com/arthur-debert/npmpath/pkg/types"

// DefaultPathKey is the search path variable
const DefaultPathKey = "PATH"

func pathKey(types.Environment) string {
	return DefaultPathKey
}
