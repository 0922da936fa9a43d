package testutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/npmpath/pkg/testutil"
)

func TestTestEnvironment(t *testing.T) {
	for name, envType := range map[string]testutil.EnvType{
		"memory":   testutil.EnvMemoryOnly,
		"isolated": testutil.EnvIsolated,
	} {
		t.Run(name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t, envType, "/usr/bin")
			assert.Equal(t, "/usr/bin", env.Env.Getenv("PATH"))

			dir := env.Dir("a", "b")
			info, err := env.FS.Stat(dir)
			require.NoError(t, err)
			assert.True(t, info.IsDir())

			file := env.File("a/tool", "#!/bin/sh\n", 0o755)
			data, err := env.FS.ReadFile(file)
			require.NoError(t, err)
			assert.Equal(t, "#!/bin/sh\n", string(data))
			assert.Equal(t, filepath.Join(env.Root, "a", "tool"), file)
		})
	}
}

func TestNodeModules(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly, "")
	levels := env.NodeModules(env.Path("level0"), 3)

	require.Len(t, levels, 3)
	assert.Equal(t, filepath.Join(testutil.MemoryRoot, "level0"), levels[0].Dir)
	assert.Equal(t, filepath.Join(levels[1].Dir, "node_modules", "level2"), levels[2].Dir)
	for _, level := range levels {
		info, err := env.FS.Stat(level.Bin)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, filepath.Join(level.Dir, "node_modules", ".bin"), level.Bin)
	}
}

func TestIsolate(t *testing.T) {
	configDir := testutil.Isolate(t)
	assert.Equal(t, configDir, os.Getenv("NPMPATH_CONFIG_DIR"))
	assert.NotEmpty(t, os.Getenv("NPMPATH_STATE_DIR"))
}
