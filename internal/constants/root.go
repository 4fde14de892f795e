package constants

import "time"

const (
	AppName            = "liftshift"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/liftshift/liftshift.db"
	Version            = "v0.3.0"

	// EnvDBConnection overrides the --config flag when set
	EnvDBConnection = "LIFTSHIFT_DB_CONNECTION"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "liftshift-notifier.lock"
	NotifierExecutable     = "liftshift-tray"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.liftshift"

	// Suggestion limits
	MaxShiftSuggestions = 10
	DaysPerWeek         = 7
)
