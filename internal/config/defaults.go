package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "test-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultLogLevel is the default zap log level
	DefaultLogLevel = "warn"
	// DefaultHistoryDriver is the database/sql driver used for the run history
	DefaultHistoryDriver = "sqlite"
	// DefaultHistoryFile is the sqlite history file inside the output directory
	DefaultHistoryFile = "history.db"
	// DefaultHistoryDatabase is the MySQL database holding the run history
	DefaultHistoryDatabase = "xunit_history"
	// DefaultHistoryLimit is the number of runs shown by the history command
	DefaultHistoryLimit = 10
)

// Environment variables read by LoadEnv
const (
	EnvOutputDir     = "XUNIT_OUTPUT_DIR"
	EnvLogLevel      = "XUNIT_LOG_LEVEL"
	EnvHistoryDriver = "XUNIT_HISTORY_DRIVER"
	EnvHistoryDSN    = "XUNIT_HISTORY_DSN"
	EnvDBHost        = "XUNIT_DB_HOST"
	EnvDBPort        = "XUNIT_DB_PORT"
	EnvDBUser        = "XUNIT_DB_USERNAME"
	EnvDBPassword    = "XUNIT_DB_PASSWORD"
	EnvDBDatabase    = "XUNIT_DB_DATABASE"
)
