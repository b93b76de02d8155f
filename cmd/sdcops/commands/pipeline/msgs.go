package pipeline

// Message constants
const (
	MsgShort   = "Run a pipeline action through the streamsets CLI"
	MsgLong    = "Run ACTION against a Data Collector through <dist>/bin/streamsets cli.\n\nActions: list, status, start, stop, reset, import, export, delete.\nThe CLI's output decides the result: JSON means the action took effect,\na known CONTAINER_* code means the pipeline was already in the requested\nstate, anything else is an error. The CLI's exit status is ignored."
	MsgExample = `  sdcops pipeline list
  sdcops pipeline start --name orders-to-kafka
  sdcops pipeline import --name orders-to-kafka --src ./orders.json
  sdcops pipeline export --name orders-to-kafka --dest ./backup.json
  sdcops pipeline stop --name orders-to-kafka --check     # Show the command only`

	MsgFlagName     = "Pipeline name (required for every action except list)"
	MsgFlagSrc      = "Pipeline JSON file to import"
	MsgFlagDest     = "File to export the pipeline to"
	MsgFlagURL      = "Data Collector URL"
	MsgFlagAuthType = "Authentication type: none, basic, digest or form"
	MsgFlagUser     = "Data Collector user"
	MsgFlagPassword = "Data Collector password"
	MsgFlagDist     = "Data Collector installation directory (SDC_DIST)"
)
