package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// EnvPrefix is prepended to every configuration environment variable,
	// e.g. FOOTPRINT_STORE_DATA_DIR.
	EnvPrefix = "FOOTPRINT"

	// Store location shared by both trackers
	DefaultDataDirName = ".clip-log"
	DefaultStoreFile   = "history.db"

	// Database table names
	TableAppUsage  = "app_usage"
	TableClipboard = "clipboard"

	DefaultEventChannel = "footprint:events"
)
