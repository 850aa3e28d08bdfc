package xdg

import (
	"path/filepath"

	"github.com/termify/termify/internal/application/port"
	"github.com/termify/termify/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using config.GetXDGDirs().
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) DataDir() (string, error) {
	return config.GetDataDir()
}

func (a *Adapter) StateDir() (string, error) {
	return config.GetStateDir()
}

func (a *Adapter) CacheDir() (string, error) {
	dirs, err := config.GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.CacheHome, nil
}

// ManDir returns the user man page directory for section 1, a sibling of the
// application data directory.
func (a *Adapter) ManDir() (string, error) {
	dirs, err := config.GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(dirs.DataHome), "man", "man1"), nil
}

var _ port.XDGPaths = (*Adapter)(nil)
