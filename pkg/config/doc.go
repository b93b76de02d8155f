// Package config loads sdcops settings.
//
// Sources are layered with koanf, later ones winning: the embedded
// defaults, the user configuration file (TOML or YAML), the legacy SDC_DIST
// and SDC_CONF variables, SDCOPS_* variables and finally explicit overrides
// from the command line.
package config
