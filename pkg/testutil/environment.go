package testutil

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/npmpath/pkg/environment"
	"github.com/arthur-debert/npmpath/pkg/filesystem"
	"github.com/arthur-debert/npmpath/pkg/paths"
	"github.com/arthur-debert/npmpath/pkg/types"
)

// EnvType selects where a TestEnvironment keeps its files
type EnvType int

const (
	// EnvMemoryOnly keeps everything in an afero MemMapFs rooted at /work
	EnvMemoryOnly EnvType = iota
	// EnvIsolated uses the real filesystem under t.TempDir
	EnvIsolated
)

// MemoryRoot is the base directory of memory environments
const MemoryRoot = "/work"

// TestEnvironment bundles the dependencies a composer or the CLI needs
type TestEnvironment struct {
	t *testing.T

	Type  EnvType
	Root  string
	Afero afero.Fs
	FS    types.FS
	Env   *environment.Map
}

// NewTestEnvironment creates an environment whose PATH is inherited
func NewTestEnvironment(t *testing.T, envType EnvType, inherited string) *TestEnvironment {
	t.Helper()

	e := &TestEnvironment{
		t:    t,
		Type: envType,
		Env:  environment.NewMap(map[string]string{"PATH": inherited}),
	}

	switch envType {
	case EnvIsolated:
		e.Afero = afero.NewOsFs()
		e.Root = t.TempDir()
	default:
		e.Afero = afero.NewMemMapFs()
		e.Root = MemoryRoot
		require.NoError(t, e.Afero.MkdirAll(e.Root, 0o755))
	}
	e.FS = filesystem.NewAferoFS(e.Afero)

	return e
}

// Path joins parts onto the environment root
func (e *TestEnvironment) Path(parts ...string) string {
	return filepath.Join(append([]string{e.Root}, parts...)...)
}

// Dir creates a directory below the root and returns its path
func (e *TestEnvironment) Dir(parts ...string) string {
	e.t.Helper()
	dir := e.Path(parts...)
	require.NoError(e.t, e.Afero.MkdirAll(dir, 0o755))
	return dir
}

// File writes a file below the root, creating parents, and returns its path
func (e *TestEnvironment) File(rel string, content string, perm fs.FileMode) string {
	e.t.Helper()
	path := e.Path(filepath.FromSlash(rel))
	require.NoError(e.t, e.Afero.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(e.t, afero.WriteFile(e.Afero, path, []byte(content), perm))
	return path
}

// Isolate points the config and state directories at fresh temp dirs and
// returns the config directory
func Isolate(t *testing.T) string {
	t.Helper()
	configDir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, configDir)
	t.Setenv(paths.EnvStateDir, t.TempDir())
	return configDir
}
