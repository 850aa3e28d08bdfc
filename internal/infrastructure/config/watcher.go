package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/termify/termify/internal/logging"
)

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(m.handleConfigEvent)
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

func (m *Manager) handleConfigEvent(e fsnotify.Event) {
	log := logging.NewFromEnv()
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

	m.mu.Lock()

	if m.skipNextReload {
		log.Debug().Msg("skipping reload (triggered by own Save)")
		m.skipNextReload = false
		if err := m.viper.ReadInConfig(); err != nil {
			log.Warn().Err(err).Msg("failed to sync viper config after Save")
		}
		m.mu.Unlock()
		return
	}

	if err := m.reload(); err != nil {
		log.Warn().Err(err).Msg("failed to reload config, keeping previous values")
		m.mu.Unlock()
		return
	}
	m.notifyCallbacksLocked()
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked() {
	config := *m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		c := config
		callback(&c)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload re-reads the file. Must be called with the write lock held.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
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

// Watch starts watching the global configuration for changes.
func Watch() error {
	if globalManager == nil {
		return fmt.Errorf("configuration not initialized")
	}
	return globalManager.Watch()
}

// OnConfigChange registers a callback for global configuration changes.
func OnConfigChange(callback func(*Config)) {
	if globalManager == nil {
		return
	}
	globalManager.OnConfigChange(callback)
}
