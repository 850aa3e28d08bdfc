package config

// Config represents the complete configuration for termify.
type Config struct {
	API        APIConfig        `mapstructure:"api" yaml:"api" toml:"api" json:"api"`
	Database   DatabaseConfig   `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Layout     LayoutConfig     `mapstructure:"layout" yaml:"layout" toml:"layout" json:"layout"`
	Session    SessionConfig    `mapstructure:"session" yaml:"session" toml:"session" json:"session"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
}

// APIConfig points the client at the termify server.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url" toml:"base_url" json:"base_url" jsonschema:"format=uri"`
	// Token is sent as a bearer token. Prefer TERMIFY_TOKEN over storing it in the file.
	Token          string `mapstructure:"token" yaml:"token" toml:"token" json:"token,omitempty"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds" toml:"timeout_seconds" json:"timeout_seconds" jsonschema:"minimum=1"`
}

// DatabaseConfig holds the local SQLite settings.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/termify/termify.db when empty.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
}

// LoggingConfig mirrors logging.Config and logging.FileConfig.
type LoggingConfig struct {
	Level         string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAge        int    `mapstructure:"max_age" yaml:"max_age" toml:"max_age" json:"max_age"`
	Compress      bool   `mapstructure:"compress" yaml:"compress" toml:"compress" json:"compress"`
}

// LayoutStore selects where workspace layouts are persisted.
type LayoutStore string

const (
	LayoutStoreLocal  LayoutStore = "local"
	LayoutStoreRemote LayoutStore = "remote"
)

// LayoutConfig tunes the pane engine.
type LayoutConfig struct {
	Store LayoutStore `mapstructure:"store" yaml:"store" toml:"store" json:"store" jsonschema:"enum=local,enum=remote"`
	// DropCenterFraction is the share of each axis that counts as the center
	// drop zone. The covered area is its square: 0.7071 gives half the pane,
	// 0.5 only a quarter.
	DropCenterFraction  float64 `mapstructure:"drop_center_fraction" yaml:"drop_center_fraction" toml:"drop_center_fraction" json:"drop_center_fraction" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=1"`
	UniqueTerminalPanes bool    `mapstructure:"unique_terminal_panes" yaml:"unique_terminal_panes" toml:"unique_terminal_panes" json:"unique_terminal_panes"`
}

// SessionConfig controls layout persistence between runs.
type SessionConfig struct {
	RestoreLastWorkspace bool `mapstructure:"restore_last_workspace" yaml:"restore_last_workspace" toml:"restore_last_workspace" json:"restore_last_workspace"`
	// SnapshotIntervalMs debounces layout saves. Zero saves on every change.
	SnapshotIntervalMs int `mapstructure:"snapshot_interval_ms" yaml:"snapshot_interval_ms" toml:"snapshot_interval_ms" json:"snapshot_interval_ms" jsonschema:"minimum=0"`
}

// AppearanceConfig colors the CLI output. Colors are #rrggbb hex strings.
type AppearanceConfig struct {
	AccentColor string `mapstructure:"accent_color" yaml:"accent_color" toml:"accent_color" json:"accent_color" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	MutedColor  string `mapstructure:"muted_color" yaml:"muted_color" toml:"muted_color" json:"muted_color" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
}
