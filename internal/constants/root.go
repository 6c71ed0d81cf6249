package constants

import "time"

// ShiftKind identifies the day or night shift
type ShiftKind string

// StageName is one of the fixed production stages shown on the display
type StageName string

// Origin describes where the figures on a frame came from
type Origin string

const (
	AppName            = "vdc-display"
	AppTitle           = "VDC Shift Progress"
	DefaultKeyringUser = "database-connection"
	Version            = "v0.3.0"

	// Environment keys
	EnvDatabasePath    = "DATABASE_PATH"
	EnvRefreshInterval = "REFRESH_INTERVAL_MINUTES"

	// Configuration defaults
	DefaultDatabasePath           = "data/logistics.db"
	DefaultRefreshIntervalMinutes = 10
	MaxRefreshIntervalMinutes     = 24 * 60
	DefaultPort                   = 8503
	DefaultLogDir                 = "logs"

	// KeyringDatabasePath makes the reader resolve its PostgreSQL connection string from the OS keyring
	KeyringDatabasePath = "keyring"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ClockFormat is the wall clock format shown in the page footer
	ClockFormat = "03:04 PM"

	// Shift boundaries: day shift runs from DayShiftStartHour up to NightShiftStartHour
	DayShiftStartHour   = 6
	NightShiftStartHour = 18

	ShiftDay   ShiftKind = "day"
	ShiftNight ShiftKind = "night"

	// Production stages, in display order
	StageInstallation StageName = "Installation"
	StagePPO          StageName = "PPO"
	StageShuttle      StageName = "Shuttle"
	StageFQA          StageName = "FQA"

	// Progress bands
	ProgressGoodThreshold    = 60
	ProgressWarningThreshold = 40

	OriginLive  Origin = "live"
	OriginDemo  Origin = "demo"
	OriginStale Origin = "stale"

	// Web server
	ReadHeaderTimeout = 5 * time.Second
	ShutdownTimeout   = 5 * time.Second
)

// Stages lists the production stages in the order they are displayed.
var Stages = []StageName{StageInstallation, StagePPO, StageShuttle, StageFQA}
