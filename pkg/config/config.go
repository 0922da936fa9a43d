package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/npmpath/pkg/errors"
)

// Config is the effective npmpath configuration
type Config struct {
	Layout Layout `koanf:"layout" toml:"layout" yaml:"layout" json:"layout"`
	Root   Root   `koanf:"root" toml:"root" yaml:"root" json:"root"`
	Shell  Shell  `koanf:"shell" toml:"shell" yaml:"shell" json:"shell"`
}

// Layout names the directories probed at each level of the ascent
type Layout struct {
	MarkerDir string `koanf:"marker_dir" toml:"marker_dir" yaml:"marker_dir" json:"marker_dir"`
	BinDir    string `koanf:"bin_dir" toml:"bin_dir" yaml:"bin_dir" json:"bin_dir"`
}

// Root controls where the bundled auxiliary tools are taken from
type Root struct {
	Path        string `koanf:"path" toml:"path" yaml:"path" json:"path"`
	Tool        string `koanf:"tool" toml:"tool" yaml:"tool" json:"tool"`
	AuxDir      string `koanf:"aux_dir" toml:"aux_dir" yaml:"aux_dir" json:"aux_dir"`
	ExecPathEnv string `koanf:"exec_path_env" toml:"exec_path_env" yaml:"exec_path_env" json:"exec_path_env"`
}

// Shell holds defaults for the shell snippet command
type Shell struct {
	Default string `koanf:"default" toml:"default" yaml:"default" json:"default"`
}

// LocalBinDir returns the per-level binary directory relative to a level
func (l Layout) LocalBinDir() string {
	return filepath.Join(l.MarkerDir, l.BinDir)
}

// AuxPath returns the auxiliary directory under root
func (r Root) AuxPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(r.AuxDir))
}

// Validate checks values that would make the ascent meaningless
func (c *Config) Validate() error {
	for _, field := range []struct{ key, value string }{
		{"layout.marker_dir", c.Layout.MarkerDir},
		{"layout.bin_dir", c.Layout.BinDir},
		{"root.aux_dir", c.Root.AuxDir},
	} {
		key, value := field.key, field.value
		if strings.TrimSpace(value) == "" {
			return errors.Newf(errors.ErrInvalidInput, "%s must not be empty", key).
				WithDetail("key", key)
		}
		if filepath.IsAbs(value) || strings.HasPrefix(value, "/") {
			return errors.Newf(errors.ErrInvalidInput, "%s must be relative, got %q", key, value).
				WithDetail("key", key)
		}
	}

	if strings.TrimSpace(c.Root.Tool) == "" {
		return errors.New(errors.ErrInvalidInput, "root.tool must not be empty").
			WithDetail("key", "root.tool")
	}

	return nil
}
