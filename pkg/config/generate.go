package config

import (
	"bytes"
	"path/filepath"

	"github.com/arthur-debert/npmpath/pkg/errors"
	"github.com/arthur-debert/npmpath/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

// Marshal renders cfg as TOML
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}

// WriteDefaultConfig writes the commented defaults to path. An existing
// file is kept unless force is set.
func WriteDefaultConfig(fsys types.FS, path string, force bool) error {
	if _, err := fsys.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrConfigWrite, "config file already exists: %s", path).
			WithDetail("path", path)
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to create %s", filepath.Dir(path))
	}

	if err := fsys.WriteFile(path, []byte(GenerateConfigContent()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write %s", path)
	}
	return nil
}
