package config

import (
	"path/filepath"

	"github.com/arthur-debert/sdcops/pkg/paths"
)

// Config is the resolved sdcops configuration.
type Config struct {
	// Dist is the Data Collector installation directory.
	Dist string `koanf:"dist" toml:"dist"`
	// ConfDir is the Data Collector configuration directory.
	ConfDir    string     `koanf:"conf_dir" toml:"conf_dir"`
	Output     string     `koanf:"output" toml:"output"`
	Connection Connection `koanf:"connection" toml:"connection"`
}

// Connection holds the Data Collector endpoint and credentials.
type Connection struct {
	URL      string `koanf:"url" toml:"url"`
	AuthType string `koanf:"auth_type" toml:"auth_type"`
	User     string `koanf:"user" toml:"user"`
	Password string `koanf:"password" toml:"password"`
}

// PropertiesPath returns the default sdc.properties location, or "" when
// no configuration directory is known.
func (c *Config) PropertiesPath() string {
	if c.ConfDir == "" {
		return ""
	}
	return filepath.Join(paths.ExpandHome(c.ConfDir), paths.PropertiesFileName)
}

// DistPath returns Dist with a leading ~ expanded.
func (c *Config) DistPath() string {
	return paths.ExpandHome(c.Dist)
}
