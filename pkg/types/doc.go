// Package types defines the interfaces shared across npmpath packages.
// The composer depends only on these, so tests can swap the real filesystem
// and process environment for in-memory ones.
package types
