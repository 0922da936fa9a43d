package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/npmpath/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for npmpath
	EnvConfigDir = "NPMPATH_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for npmpath
	EnvStateDir = "NPMPATH_STATE_DIR"

	// EnvXDGStateHome is read directly so tests can redirect it at runtime
	EnvXDGStateHome = "XDG_STATE_HOME"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names under the XDG directories
const (
	// AppDirName is the directory name for npmpath-specific files
	AppDirName = "npmpath"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "npmpath.log"
)

// Paths provides the locations npmpath reads and writes
type Paths interface {
	ConfigDir() string
	StateDir() string
	ConfigFilePath() string
	LogFilePath() string
}

type paths struct {
	configDir string
	stateDir  string
}

// New resolves the npmpath directories, honouring environment overrides
func New() (Paths, error) {
	p := &paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = ExpandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	switch {
	case os.Getenv(EnvStateDir) != "":
		p.stateDir = ExpandHome(os.Getenv(EnvStateDir))
	case os.Getenv(EnvXDGStateHome) != "":
		p.stateDir = filepath.Join(os.Getenv(EnvXDGStateHome), AppDirName)
	default:
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	for _, dir := range []*string{&p.configDir, &p.stateDir} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %s", *dir)
		}
		*dir = abs
	}

	return p, nil
}

// ConfigDir returns the config directory for npmpath
func (p *paths) ConfigDir() string {
	return p.configDir
}

// StateDir returns the state directory for npmpath
func (p *paths) StateDir() string {
	return p.stateDir
}

// ConfigFilePath returns the path of the user configuration file
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// LogFilePath returns the path to the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
