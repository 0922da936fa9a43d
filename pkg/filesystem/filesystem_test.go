package filesystem

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/npmpath/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseFS(t *testing.T, fsys types.FS, root string) {
	t.Helper()

	testFile := filepath.Join(root, "pkg", "package.json")
	testContent := []byte(`{"name":"fixture"}`)

	require.NoError(t, fsys.MkdirAll(filepath.Dir(testFile), 0755))
	require.NoError(t, fsys.WriteFile(testFile, testContent, 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "package.json", info.Name())
	assert.False(t, info.IsDir())

	content, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	_, err = fsys.ReadFile(filepath.Dir(testFile))
	assert.Error(t, err, "reading a directory should fail")

	_, err = fsys.Stat(filepath.Join(root, "missing"))
	assert.True(t, os.IsNotExist(err))

	resolved, err := fsys.EvalSymlinks(testFile)
	require.NoError(t, err)
	assert.Equal(t, "package.json", filepath.Base(resolved))
}

func TestOSFS(t *testing.T) {
	exerciseFS(t, NewOS(), t.TempDir())
}

func TestAferoFS_MemMap(t *testing.T) {
	root := filepath.FromSlash("/work")
	exerciseFS(t, NewAferoFS(afero.NewMemMapFs()), root)
}

func TestAferoFS_EvalSymlinksMissing(t *testing.T) {
	fsys := NewAferoFS(afero.NewMemMapFs())
	_, err := fsys.EvalSymlinks(filepath.FromSlash("/nowhere/npm"))
	assert.Error(t, err)
}

func TestOSFS_EvalSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	dir := t.TempDir()
	target := filepath.Join(dir, "lib", "npm-cli.js")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
	require.NoError(t, os.WriteFile(target, []byte("#!/usr/bin/env node\n"), 0755))

	link := filepath.Join(dir, "npm")
	require.NoError(t, os.Symlink(target, link))

	want, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)

	for name, fsys := range map[string]types.FS{
		"os":       NewOS(),
		"afero-os": NewAferoFS(afero.NewOsFs()),
	} {
		t.Run(name, func(t *testing.T) {
			got, err := fsys.EvalSymlinks(link)
			require.NoError(t, err)
			assert.Equal(t, want, got)

			info, err := fsys.Lstat(link)
			require.NoError(t, err)
			assert.NotZero(t, info.Mode()&os.ModeSymlink)
		})
	}
}
