package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sdcops/pkg/errors"
	"github.com/arthur-debert/sdcops/pkg/logging"
	"github.com/arthur-debert/sdcops/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every sdcops environment override.
	EnvPrefix = "SDCOPS_"

	// EnvDist and EnvConf are the variables the Data Collector tooling
	// itself uses for its installation and configuration directories.
	EnvDist = "SDC_DIST"
	EnvConf = "SDC_CONF"
)

// legacyEnv maps the Data Collector's own variables to config keys.
var legacyEnv = map[string]string{
	EnvDist: "dist",
	EnvConf: "conf_dir",
}

// LoadOptions selects the user file and explicit overrides.
type LoadOptions struct {
	// ConfigFile is an explicit configuration file. When empty, the default
	// file under the XDG config directory is used if present.
	ConfigFile string
	// Overrides are dotted keys set from the command line.
	Overrides map[string]interface{}
}

// Default returns the configuration described by the embedded defaults.
func Default() *Config {
	cfg, err := Load(LoadOptions{ConfigFile: "-"})
	if err != nil {
		// The embedded file is part of the binary.
		panic(err)
	}
	return cfg
}

// Load resolves the configuration from every source.
// A ConfigFile of "-" skips the user file and the environment.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	if opts.ConfigFile != "-" {
		// 2. User file
		path, explicit := opts.ConfigFile, opts.ConfigFile != ""
		if !explicit {
			path = paths.ConfigFilePath()
		}
		if err := loadUserFile(k, paths.ExpandHome(path), explicit); err != nil {
			return nil, err
		}

		// 3. Legacy Data Collector variables
		if err := k.Load(env.Provider("SDC_", ".", func(s string) string {
			return legacyEnv[s]
		}), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load SDC_ env vars")
		}

		// 4. SDCOPS_ variables, __ separates nesting levels
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 5. Command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
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

	logger.Debug().
		Str("dist", cfg.Dist).
		Str("confDir", cfg.ConfDir).
		Str("url", cfg.Connection.URL).
		Msg("Configuration loaded")

	return &cfg, nil
}

// loadUserFile merges path into k. A missing default file is not an error.
func loadUserFile(k *koanf.Koanf, path string, explicit bool) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

// envKey turns SDCOPS_CONNECTION__AUTH_TYPE into connection.auth_type.
// The directory overrides read by pkg/paths are not config keys.
func envKey(s string) string {
	switch s {
	case paths.EnvConfigDir, paths.EnvStateDir:
		return ""
	}
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}
