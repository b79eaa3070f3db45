package config

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Time Defaults
	DefaultCanonicalInstantLayout = "2006-01-02 3:04 PM -0700"
	DefaultZoneID                 = "UTC"
)
