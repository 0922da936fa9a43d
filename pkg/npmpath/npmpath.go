package npmpath

import (
	"os"
	"sync"

	"github.com/arthur-debert/npmpath/pkg/types"
)

// Separator joins search path entries on this platform
const Separator = string(os.PathListSeparator)

// Options are the per-call inputs of a composition
type Options struct {
	// Cwd is the directory the ascent starts from. Empty means the working
	// directory; relative paths are taken from the working directory.
	Cwd string

	// Root is the npm installation whose bundled node-gyp-bin is added.
	// Empty means detect.
	Root string
}

// Result carries the outcome of an asynchronous call
type Result struct {
	Path string
	Err  error
}

// Callback receives the outcome of ComputeFunc and ApplyFunc
type Callback func(path string, err error)

// PathKey returns the name under which env stores the search path
func PathKey(env types.Environment) string {
	return pathKey(env)
}

var defaultComposer = sync.OnceValue(func() *Composer {
	return New()
})

// Default returns the composer bound to the OS filesystem and environment
func Default() *Composer {
	return defaultComposer()
}

// Compose runs the default composer
func Compose(opts Options) (*Composition, error) {
	return Default().Compose(opts)
}

// ComputeSync returns the composed search path
func ComputeSync(opts Options) (string, error) {
	return Default().ComputeSync(opts)
}

// ComputeAsync delivers the composed search path on the returned channel
func ComputeAsync(opts Options) <-chan Result {
	return Default().ComputeAsync(opts)
}

// ComputeFunc passes the composed search path to fn after returning
func ComputeFunc(opts Options, fn Callback) {
	Default().ComputeFunc(opts, fn)
}

// ApplySync composes and writes the search path to the process environment
func ApplySync(opts Options) (string, error) {
	return Default().ApplySync(opts)
}

// ApplyAsync is ApplySync with deferred delivery of the result
func ApplyAsync(opts Options) <-chan Result {
	return Default().ApplyAsync(opts)
}

// ApplyFunc is ApplySync with the result passed to fn after returning
func ApplyFunc(opts Options, fn Callback) {
	Default().ApplyFunc(opts, fn)
}
