package genconfig

// Message constants
const (
	MsgShort   = "Generate the sdcops configuration file"
	MsgLong    = "Output a configuration template with every default commented out, or\nwrite it to the user configuration file with -w.\n\nWith --resolved, print the configuration sdcops would use right now, after\nmerging the config file, environment and flags."
	MsgExample = `  sdcops gen-config                  # Output the template to stdout
  sdcops gen-config -w               # Write it to $XDG_CONFIG_HOME/sdcops/config.toml
  sdcops gen-config --resolved       # Show the effective configuration`

	MsgFlagWrite       = "Write the template to the user config file instead of stdout"
	MsgFlagForce       = "Overwrite an existing config file"
	MsgFlagResolved    = "Print the effective configuration instead of the template"
	MsgFlagShowSecrets = "Include the password in --resolved output"

	MsgWritten       = "Wrote %s"
	MsgWouldWrite    = "Would write %s"
	MsgErrFileExists = "config file %s already exists (use --force to overwrite)"
)
