// Package paths provides centralized path handling for sdcops.
//
// It resolves the XDG directories the CLI uses for its own files and
// expands user-supplied paths such as "~/sdc/etc/sdc.properties".
//
// # Environment Variables
//
//   - SDCOPS_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/sdcops)
//   - SDCOPS_STATE_DIR: Override XDG state directory (default: $XDG_STATE_HOME/sdcops)
//
// # XDG Base Directory Structure
//
//   - Config: $XDG_CONFIG_HOME/sdcops/config.toml (user configuration)
//   - State: $XDG_STATE_HOME/sdcops/sdcops.log (log file)
package paths
