package commands

// History defaults
const (
	// DefaultHistoryLimit is the number of health check rows shown by default
	DefaultHistoryLimit = 20
	// TimestampFormat is used when printing stored timestamps
	TimestampFormat = "2006-01-02 15:04:05"
)

// Error messages
const (
	ErrConfigLoaderUnavailable = "config loader unavailable"
	ErrInvalidHistoryLimit     = "--limit must be >= 0"
)

// Success messages
const (
	MsgConfigurationValid = "Configuration valid"
	MsgNoHistoryRecorded  = "No health checks recorded yet."
)
