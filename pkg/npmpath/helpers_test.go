//go:build !windows

package npmpath_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/npmpath/pkg/environment"
	"github.com/arthur-debert/npmpath/pkg/filesystem"
	"github.com/arthur-debert/npmpath/pkg/npmpath"
)

const (
	testExe     = "/opt/node/bin/node"
	testExeDir  = "/opt/node/bin"
	testInherit = "/usr/local/bin:/usr/bin:/bin"
)

// memTree builds an in-memory tree from directories and files
type memTree struct {
	t  *testing.T
	fs afero.Fs
}

func newMemTree(t *testing.T) *memTree {
	t.Helper()
	return &memTree{t: t, fs: afero.NewMemMapFs()}
}

func (m *memTree) dir(paths ...string) *memTree {
	m.t.Helper()
	for _, p := range paths {
		require.NoError(m.t, m.fs.MkdirAll(p, 0o755))
	}
	return m
}

func (m *memTree) file(path string, perm fs.FileMode) *memTree {
	m.t.Helper()
	require.NoError(m.t, afero.WriteFile(m.fs, path, []byte("x"), perm))
	return m
}

func (m *memTree) composer(env *environment.Map, opts ...npmpath.ComposerOption) *npmpath.Composer {
	base := []npmpath.ComposerOption{
		npmpath.WithFS(filesystem.NewAferoFS(m.fs)),
		npmpath.WithEnvironment(env),
		npmpath.WithExecutable(func() (string, error) { return testExe, nil }),
		npmpath.WithGetwd(func() (string, error) { return "/work", nil }),
	}
	return npmpath.New(append(base, opts...)...)
}

func pathEnv(path string) *environment.Map {
	return environment.NewMap(map[string]string{"PATH": path})
}

var errBoom = errors.New("boom")

// MockEnvironment records calls made against the environment
type MockEnvironment struct {
	mock.Mock
}

func (m *MockEnvironment) Getenv(key string) string {
	args := m.Called(key)
	return args.String(0)
}

func (m *MockEnvironment) LookupEnv(key string) (string, bool) {
	args := m.Called(key)
	return args.String(0), args.Bool(1)
}

func (m *MockEnvironment) Setenv(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *MockEnvironment) Unsetenv(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockEnvironment) Environ() []string {
	args := m.Called()
	return args.Get(0).([]string)
}
