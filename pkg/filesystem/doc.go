// Package filesystem provides filesystem implementations for npmpath.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and afero-backed filesystems used
// to build in-memory dependency trees in tests.
package filesystem
