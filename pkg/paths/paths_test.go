package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Overrides(t *testing.T) {
	configDir := t.TempDir()
	stateDir := t.TempDir()
	t.Setenv(EnvConfigDir, configDir)
	t.Setenv(EnvStateDir, stateDir)

	p, err := New()
	require.NoError(t, err)

	assert.Equal(t, configDir, p.ConfigDir())
	assert.Equal(t, stateDir, p.StateDir())
	assert.Equal(t, filepath.Join(configDir, "config.toml"), p.ConfigFilePath())
	assert.Equal(t, filepath.Join(stateDir, "npmpath.log"), p.LogFilePath())
}

func TestNew_XDGStateHome(t *testing.T) {
	stateHome := t.TempDir()
	t.Setenv(EnvStateDir, "")
	t.Setenv(EnvXDGStateHome, stateHome)

	p, err := New()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(stateHome, "npmpath", "npmpath.log"), p.LogFilePath())
}

func TestNew_Defaults(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvStateDir, "")
	t.Setenv(EnvXDGStateHome, "")

	p, err := New()
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(p.ConfigDir()))
	assert.Equal(t, "npmpath", filepath.Base(p.ConfigDir()))
	assert.Equal(t, "npmpath", filepath.Base(p.StateDir()))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/.config/npmpath", filepath.Join(home, ".config", "npmpath")},
		{"~other/dir", "~other/dir"},
		{"/abs/path", "/abs/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}
