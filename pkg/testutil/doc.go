// Package testutil builds isolated fixtures for npmpath tests.
//
// Key components:
//   - TestEnvironment: a filesystem, an environment and a base directory,
//     either in memory (afero MemMapFs) or on disk under t.TempDir
//   - NodeModules: nested dependency levels, each with its bin directory
//   - Isolate: points the config and state directories at temp dirs
//
// Most tests should use EnvMemoryOnly. Tests that run processes or need
// real symlinks use EnvIsolated.
package testutil
