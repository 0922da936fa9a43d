package environment

import (
	"os"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_GetSetUnset(t *testing.T) {
	env := NewMap(map[string]string{"HOME": "/home/dev"})

	assert.Equal(t, "/home/dev", env.Getenv("HOME"))

	_, ok := env.LookupEnv("MISSING")
	assert.False(t, ok)

	require.NoError(t, env.Setenv("EMPTY", ""))
	v, ok := env.LookupEnv("EMPTY")
	assert.True(t, ok, "empty values are still set")
	assert.Equal(t, "", v)

	require.NoError(t, env.Unsetenv("HOME"))
	_, ok = env.LookupEnv("HOME")
	assert.False(t, ok)
}

func TestMap_CopiesInput(t *testing.T) {
	vars := map[string]string{"A": "1"}
	env := NewMap(vars)
	vars["A"] = "2"

	assert.Equal(t, "1", env.Getenv("A"))
}

func TestMap_RejectsInvalidKeys(t *testing.T) {
	env := NewMap(nil)

	for _, key := range []string{"", "A=B", "NUL\x00"} {
		assert.Error(t, env.Setenv(key, "x"), "key %q", key)
	}
}

func TestFromEnviron(t *testing.T) {
	env := FromEnviron([]string{
		"PATH=/usr/bin:/bin",
		"EQUALS=a=b",
		"malformed",
		"=hidden",
		"PATH=/override",
	})

	assert.Equal(t, "/override", env.Getenv("PATH"))
	assert.Equal(t, "a=b", env.Getenv("EQUALS"))
	assert.Equal(t, []string{"EQUALS=a=b", "PATH=/override"}, env.Environ())
}

func TestMap_CaseFoldingOnWindows(t *testing.T) {
	env := NewMap(map[string]string{"Path": `C:\Windows`})

	v, ok := env.LookupEnv("PATH")
	if runtime.GOOS == "windows" {
		require.True(t, ok)
		assert.Equal(t, `C:\Windows`, v)

		require.NoError(t, env.Setenv("PATH", `C:\bin`))
		assert.Equal(t, []string{`Path=C:\bin`}, env.Environ(), "stored spelling is kept")
		return
	}
	assert.False(t, ok)
}

func TestMap_ConcurrentAccess(t *testing.T) {
	env := NewMap(nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = env.Setenv("KEY", "value")
			_ = env.Getenv("KEY")
			_ = env.Environ()
		}()
	}
	wg.Wait()

	assert.Equal(t, "value", env.Getenv("KEY"))
}

func TestOS(t *testing.T) {
	t.Setenv("NPMPATH_ENV_TEST", "before")
	env := OS()

	assert.Equal(t, "before", env.Getenv("NPMPATH_ENV_TEST"))
	require.NoError(t, env.Setenv("NPMPATH_ENV_TEST", "after"))
	assert.Equal(t, "after", os.Getenv("NPMPATH_ENV_TEST"))
	assert.Contains(t, env.Environ(), "NPMPATH_ENV_TEST=after")
}

func TestSnapshot(t *testing.T) {
	t.Setenv("NPMPATH_SNAPSHOT", "1")
	snap := Snapshot()

	require.NoError(t, snap.Setenv("NPMPATH_SNAPSHOT", "2"))
	assert.Equal(t, "1", os.Getenv("NPMPATH_SNAPSHOT"), "snapshot is isolated from the process")
}
