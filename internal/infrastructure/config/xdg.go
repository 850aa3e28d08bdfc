package config

import (
	"os"
	"path/filepath"
)

// File permission constants
const (
	dirPerm  = 0755
	filePerm = 0644

	appName        = "termify"
	databaseName   = "termify.db"
	configFileName = "config.toml"
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
	CacheHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for termify:
// - $XDG_CONFIG_HOME/termify (default: ~/.config/termify)
// - $XDG_DATA_HOME/termify (default: ~/.local/share/termify)
// - $XDG_STATE_HOME/termify (default: ~/.local/state/termify)
// - $XDG_CACHE_HOME/termify (default: ~/.cache/termify)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{
			ConfigHome: devDir,
			DataHome:   devDir,
			StateHome:  devDir,
			CacheHome:  filepath.Join(devDir, "cache"),
		}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: xdgDir("XDG_CONFIG_HOME", homeDir, ".config"),
		DataHome:   xdgDir("XDG_DATA_HOME", homeDir, ".local", "share"),
		StateHome:  xdgDir("XDG_STATE_HOME", homeDir, ".local", "state"),
		CacheHome:  xdgDir("XDG_CACHE_HOME", homeDir, ".cache"),
	}, nil
}

func xdgDir(env, home string, fallback ...string) string {
	base := os.Getenv(env)
	if base == "" {
		base = filepath.Join(append([]string{home}, fallback...)...)
	}
	return filepath.Join(base, appName)
}

// GetConfigDir returns the XDG config directory for termify.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetDataDir returns the XDG data directory for termify.
func GetDataDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.DataHome, nil
}

// GetStateDir returns the XDG state directory for termify.
func GetStateDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.StateHome, nil
}

// GetLogDir returns the log directory under XDG_STATE_HOME.
func GetLogDir() (string, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, "logs"), nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFileName), nil
}

// GetDatabaseFile returns the path to the layout database in the data directory.
func GetDatabaseFile() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, databaseName), nil
}

// EnsureDirectories creates the XDG directories if they don't exist.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}

	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}
