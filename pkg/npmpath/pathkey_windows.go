package npmpath

import (
	"strings"

	"github.com/arthur-debert/npmpath/pkg/types"
)

// DefaultPathKey is used when the environment has no search path variable
const DefaultPathKey = "Path"

// pathKey returns the existing spelling of the variable; Windows keys are
// case-insensitive and the casing varies between shells
func pathKey(env types.Environment) string {
	for _, kv := range env.Environ() {
		key, _, ok := strings.Cut(kv, "=")
		if ok && strings.EqualFold(key, "PATH") {
			return key
		}
	}
	return DefaultPathKey
}
