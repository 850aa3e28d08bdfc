package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// TERMIFY_LAYOUT_STORE, TERMIFY_API_BASE_URL, ...
	v.SetEnvPrefix("TERMIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"logging.level":  "TERMIFY_LOG_LEVEL",
		"logging.format": "TERMIFY_LOG_FORMAT",
		"api.token":      "TERMIFY_TOKEN",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf("failed to create default config at %s: %w", configDir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	switch LayoutStore(strings.ToLower(strings.TrimSpace(string(config.Layout.Store)))) {
	case "", LayoutStoreLocal:
		config.Layout.Store = LayoutStoreLocal
	case LayoutStoreRemote:
		config.Layout.Store = LayoutStoreRemote
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.API.BaseURL = strings.TrimRight(strings.TrimSpace(config.API.BaseURL), "/")
	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg, writes it to the config file and makes it current.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()

	if cfg == nil {
		m.mu.Unlock()
		return fmt.Errorf("config is nil")
	}

	next := *cfg
	normalizeConfig(&next)
	if err := validateConfig(&next); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	path := m.viper.ConfigFileUsed()
	if path == "" {
		var err error
		if path, err = GetConfigFile(); err != nil {
			m.mu.Unlock()
			return err
		}
	}
	if err := WriteConfigOrdered(&next, path); err != nil {
		m.mu.Unlock()
		return err
	}

	// The watcher fires for our own write; the in-memory copy is already current.
	if m.watching {
		m.skipNextReload = true
	}
	m.config = &next
	m.notifyCallbacksLocked()
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	defaults := DefaultConfig()
	if err := ensureDatabasePath(defaults); err != nil {
		return err
	}
	if err := WriteConfigOrdered(defaults, configFile); err != nil {
		return err
	}

	if err := GenerateSchemaFile(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("api.base_url", defaults.API.BaseURL)
	m.viper.SetDefault("api.token", defaults.API.Token)
	m.viper.SetDefault("api.timeout_seconds", defaults.API.TimeoutSeconds)

	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)

	m.viper.SetDefault("layout.store", string(defaults.Layout.Store))
	m.viper.SetDefault("layout.drop_center_fraction", defaults.Layout.DropCenterFraction)
	m.viper.SetDefault("layout.unique_terminal_panes", defaults.Layout.UniqueTerminalPanes)

	m.viper.SetDefault("session.restore_last_workspace", defaults.Session.RestoreLastWorkspace)
	m.viper.SetDefault("session.snapshot_interval_ms", defaults.Session.SnapshotIntervalMs)

	m.viper.SetDefault("appearance.accent_color", defaults.Appearance.AccentColor)
	m.viper.SetDefault("appearance.muted_color", defaults.Appearance.MutedColor)
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		return DefaultConfig()
	}
	return globalManager.Get()
}

// GetManager returns the global configuration manager.
func GetManager() *Manager {
	return globalManager
}
