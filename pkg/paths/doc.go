// Package paths resolves the on-disk locations npmpath uses for itself.
//
// npmpath keeps no state of its own; the only files it touches are its
// optional configuration file and its log file. Both follow the XDG Base
// Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/npmpath/config.toml
//   - Log:    $XDG_STATE_HOME/npmpath/npmpath.log
//
// # Environment Variables
//
//   - NPMPATH_CONFIG_DIR: Override the config directory
//   - NPMPATH_STATE_DIR: Override the state directory
//
// Both accept a leading ~ for the home directory.
package paths
