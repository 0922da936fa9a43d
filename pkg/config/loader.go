package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/npmpath/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes every configuration environment variable
const EnvPrefix = "NPMPATH_"

// sections are the top-level tables; env vars outside them are not config
var sections = map[string]bool{
	"layout": true,
	"root":   true,
	"shell":  true,
}

// FlagKeys maps CLI flag names to configuration keys. Only flags the user
// changed are merged.
var FlagKeys = map[string]string{
	"marker-dir": "layout.marker_dir",
	"bin-dir":    "layout.bin_dir",
	"npm":        "root.path",
}

// LoadOptions selects the optional layers
type LoadOptions struct {
	// ConfigFile is the user TOML file. A missing file is skipped.
	ConfigFile string

	// Flags, when set, contributes the changed flags listed in FlagKeys
	Flags *pflag.FlagSet

	// SkipEnv disables the NPMPATH_* environment layer
	SkipEnv bool

	// Overrides are dotted keys applied last, as given by --set
	Overrides map[string]interface{}
}

// Load builds the effective configuration
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file if it exists
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err == nil {
			if err := k.Load(file.Provider(opts.ConfigFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", opts.ConfigFile).
					WithDetail("path", opts.ConfigFile)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config %s", opts.ConfigFile)
		}
	}

	// 3. Environment
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Flags
	if opts.Flags != nil {
		provider := posflag.ProviderWithFlag(opts.Flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := FlagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(opts.Flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flags")
		}
	}

	// 5. Explicit overrides
	if len(opts.Overrides) > 0 {
		for key := range opts.Overrides {
			if !k.Exists(key) {
				return nil, errors.Newf(errors.ErrInvalidInput, "unknown configuration key %q", key).
					WithDetail("key", key)
			}
		}
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the embedded defaults
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipEnv: true})
	if err != nil {
		// The embedded file is part of the binary; failing here is a build defect
		panic(err)
	}
	return cfg
}

// ParseOverrides turns key=value pairs into an overrides map
func ParseOverrides(pairs []string) (map[string]interface{}, error) {
	overrides := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "override %q is not key=value", pair).
				WithDetail("override", pair)
		}
		overrides[key] = value
	}
	return overrides, nil
}

// envKey turns NPMPATH_LAYOUT_BIN_DIR into layout.bin_dir. The first
// underscore separates the section; the rest belong to the key.
func envKey(name string) string {
	name = strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	section, key, ok := strings.Cut(name, "_")
	if !ok || key == "" || !sections[section] {
		return ""
	}
	return section + "." + key
}
