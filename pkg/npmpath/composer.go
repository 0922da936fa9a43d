package npmpath

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/npmpath/pkg/config"
	"github.com/arthur-debert/npmpath/pkg/environment"
	"github.com/arthur-debert/npmpath/pkg/errors"
	"github.com/arthur-debert/npmpath/pkg/filesystem"
	"github.com/arthur-debert/npmpath/pkg/logging"
	"github.com/arthur-debert/npmpath/pkg/types"
)

// Composer builds search paths against an injected filesystem and
// environment
type Composer struct {
	fs         types.FS
	env        types.Environment
	cfg        *config.Config
	executable func() (string, error)
	getwd      func() (string, error)
	logger     zerolog.Logger
}

// ComposerOption configures a Composer
type ComposerOption func(*Composer)

// WithFS sets the filesystem probed during ascent and root resolution
func WithFS(fsys types.FS) ComposerOption {
	return func(c *Composer) {
		c.fs = fsys
	}
}

// WithEnvironment sets the environment read for the inherited path and
// written by the Apply operations
func WithEnvironment(env types.Environment) ComposerOption {
	return func(c *Composer) {
		c.env = env
	}
}

// WithConfig sets the layout and root settings
func WithConfig(cfg *config.Config) ComposerOption {
	return func(c *Composer) {
		c.cfg = cfg
	}
}

// WithExecutable replaces os.Executable
func WithExecutable(fn func() (string, error)) ComposerOption {
	return func(c *Composer) {
		c.executable = fn
	}
}

// WithGetwd replaces os.Getwd
func WithGetwd(fn func() (string, error)) ComposerOption {
	return func(c *Composer) {
		c.getwd = fn
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger zerolog.Logger) ComposerOption {
	return func(c *Composer) {
		c.logger = logger
	}
}

// New creates a Composer. Without options it uses the OS filesystem, the
// process environment and the built-in configuration.
func New(opts ...ComposerOption) *Composer {
	c := &Composer{
		fs:         filesystem.NewOS(),
		env:        environment.OS(),
		executable: os.Executable,
		getwd:      os.Getwd,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cfg == nil {
		c.cfg = config.Default()
	}
	return c
}

// Environment returns the environment the composer reads and writes
func (c *Composer) Environment() types.Environment {
	return c.env
}

// Compose builds the search path for opts
func (c *Composer) Compose(opts Options) (*Composition, error) {
	defer logging.LogOperationStart(c.logger, "compose")()

	cwd, err := c.resolveCwd(opts.Cwd)
	if err != nil {
		return nil, err
	}

	key := PathKey(c.env)
	comp := &Composition{Cwd: cwd, PathKey: key}
	sp := NewSearchPath()

	for _, dir := range c.localBins(cwd) {
		sp.Add(dir, SourceLocalBin)
	}

	exe, err := c.executable()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrExecutable, "cannot locate the running executable")
	}
	sp.Add(filepath.Dir(exe), SourceExecutable)

	root, err := c.resolveRoot(cwd, opts.Root)
	if err != nil {
		c.logger.Debug().Err(err).Msg("npm root unresolved, skipping auxiliary directory")
	} else {
		comp.Root = root
		sp.Add(c.cfg.Root.AuxPath(root), SourceAuxiliary)
	}

	sp.AddList(c.env.Getenv(key), SourceInherited)

	comp.Entries = sp.Entries()
	c.logger.Debug().
		Str("cwd", cwd).
		Str("root", comp.Root).
		Int("entries", len(comp.Entries)).
		Msg("search path composed")
	return comp, nil
}

// resolveCwd returns an absolute, clean working directory
func (c *Composer) resolveCwd(cwd string) (string, error) {
	if cwd != "" && filepath.IsAbs(cwd) {
		return filepath.Clean(cwd), nil
	}
	wd, err := c.getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrWorkingDir, "cannot determine the working directory")
	}
	return filepath.Join(wd, cwd), nil
}

// localBins ascends from cwd to the filesystem root and returns every
// existing bin directory, nearest first
func (c *Composer) localBins(cwd string) []string {
	rel := c.cfg.Layout.LocalBinDir()
	var found []string
	dir := cwd
	for {
		candidate := filepath.Join(dir, rel)
		if info, err := c.fs.Stat(candidate); err == nil && info.IsDir() {
			c.logger.Debug().Str("dir", candidate).Msg("found local bin directory")
			found = append(found, candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return found
		}
		dir = parent
	}
}

// ComputeSync returns the composed search path
func (c *Composer) ComputeSync(opts Options) (string, error) {
	comp, err := c.Compose(opts)
	if err != nil {
		return "", err
	}
	return comp.String(), nil
}

// ComputeAsync computes immediately and delivers the result on the
// returned channel from another goroutine
func (c *Composer) ComputeAsync(opts Options) <-chan Result {
	path, err := c.ComputeSync(opts)
	return deliver(path, err)
}

// ComputeFunc computes immediately and passes the result to fn on another
// goroutine once ComputeFunc has returned
func (c *Composer) ComputeFunc(opts Options, fn Callback) {
	path, err := c.ComputeSync(opts)
	defer schedule(fn, path, err)()
}

// ApplySync computes the search path and writes it to the environment
func (c *Composer) ApplySync(opts Options) (string, error) {
	comp, err := c.Compose(opts)
	if err != nil {
		return "", err
	}
	path := comp.String()
	if err := c.env.Setenv(comp.PathKey, path); err != nil {
		return "", errors.Wrapf(err, errors.ErrEnvWrite, "cannot set %s", comp.PathKey)
	}
	c.logger.Debug().Str("key", comp.PathKey).Msg("search path applied")
	return path, nil
}

// ApplyAsync writes the environment immediately and delivers the result
// on the returned channel
func (c *Composer) ApplyAsync(opts Options) <-chan Result {
	path, err := c.ApplySync(opts)
	return deliver(path, err)
}

// ApplyFunc writes the environment immediately and passes the result to
// fn once ApplyFunc has returned
func (c *Composer) ApplyFunc(opts Options, fn Callback) {
	path, err := c.ApplySync(opts)
	defer schedule(fn, path, err)()
}

func deliver(path string, err error) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		ch <- Result{Path: path, Err: err}
		close(ch)
	}()
	return ch
}

// schedule starts a goroutine that calls fn once the returned release
// function has run
func schedule(fn Callback, path string, err error) (release func()) {
	ready := make(chan struct{})
	if fn != nil {
		go func() {
			<-ready
			fn(path, err)
		}()
	}
	return func() {
		close(ready)
	}
}
