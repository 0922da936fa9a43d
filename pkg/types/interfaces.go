package types

import (
	"io/fs"
)

// FS is the filesystem interface required for npmpath operations
type FS interface {
	// Stat follows symlinks, like os.Stat
	Stat(name string) (fs.FileInfo, error)

	// Lstat does not follow symlinks. For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)

	// EvalSymlinks returns the path name after the evaluation of any symbolic
	// links. Filesystems without symlink support return the cleaned name.
	EvalSymlinks(name string) (string, error)

	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}

// Environment is a mutable set of environment variables.
// The process environment is one implementation; an in-memory map is another.
type Environment interface {
	Getenv(key string) string
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
	Unsetenv(key string) error

	// Environ returns a copy of the variables in "key=value" form
	Environ() []string
}
