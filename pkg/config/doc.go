// Package config handles configuration management for npmpath.
// It layers the embedded TOML defaults, the user TOML file, NPMPATH_*
// environment variables and command-line flags, in that order.
package config
