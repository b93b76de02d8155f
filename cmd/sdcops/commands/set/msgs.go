package set

// Message constants
const (
	MsgShort   = "Set a property in sdc.properties"
	MsgLong    = "Set NAME to VALUE in a Data Collector properties file.\n\nThe key must already be present in the file, either active or commented out\nwith a single leading '#'. Every matching line is replaced with NAME=VALUE;\nall other lines are kept byte for byte. Nothing is written when the file\nalready holds the value."
	MsgExample = `  sdcops set http.port 18640                        # Edit $SDC_CONF/sdc.properties
  sdcops set https.port 18636 --dest ./sdc.properties --backup
  sdcops set http.port 18640 --dry-run --diff       # Preview the change`

	MsgFlagDest   = "Properties file to edit (default: <conf_dir>/sdc.properties)"
	MsgFlagBackup = "Move the original file to a numbered .bak before writing"

	MsgErrNoDest = "destination file must be specified: pass --dest or set conf_dir (SDC_CONF)"
)
