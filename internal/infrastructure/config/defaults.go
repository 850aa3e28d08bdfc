package config

// Default configuration constants
const (
	// API defaults
	defaultBaseURL        = "http://127.0.0.1:7681"
	defaultTimeoutSeconds = 15

	// Logging defaults
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 7 // days

	// Layout defaults
	defaultDropCenterFraction = 0.7071 // per axis, half the pane's area

	// Session defaults
	defaultSnapshotIntervalMs = 1000

	// Appearance defaults
	defaultAccentColor = "#4ade80"
	defaultMutedColor  = "#909090"
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for termify.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        defaultBaseURL,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: false,
			LogDir:        getDefaultLogDir(),
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			MaxAge:        defaultMaxLogAgeDays,
			Compress:      true,
		},
		Layout: LayoutConfig{
			Store:               LayoutStoreLocal,
			DropCenterFraction:  defaultDropCenterFraction,
			UniqueTerminalPanes: false,
		},
		Session: SessionConfig{
			RestoreLastWorkspace: true,
			SnapshotIntervalMs:   defaultSnapshotIntervalMs,
		},
		Appearance: AppearanceConfig{
			AccentColor: defaultAccentColor,
			MutedColor:  defaultMutedColor,
		},
	}
}
