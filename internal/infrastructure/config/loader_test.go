package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG directory at a fresh temp dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	return root
}

func TestManager_LoadCreatesDefaultConfig(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	configFile := filepath.Join(root, "config", "termify", "config.toml")
	assert.FileExists(t, configFile)
	assert.FileExists(t, filepath.Join(root, "config", "termify", "config.schema.json"))

	cfg := mgr.Get()
	assert.Equal(t, LayoutStoreLocal, cfg.Layout.Store)
	assert.Equal(t, defaultDropCenterFraction, cfg.Layout.DropCenterFraction)
	assert.Equal(t, 1000, cfg.Session.SnapshotIntervalMs)
	assert.Equal(t, filepath.Join(root, "data", "termify", "termify.db"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(root, "state", "termify", "logs"), cfg.Logging.LogDir)
}

func TestManager_LoadReadsFileAndEnv(t *testing.T) {
	root := isolateXDG(t)
	configDir := filepath.Join(root, "config", "termify")
	require.NoError(t, os.MkdirAll(configDir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`
[layout]
store = 'REMOTE'
drop_center_fraction = 0.3
unique_terminal_panes = true

[api]
base_url = 'https://termify.example.com/'
`), filePerm))

	t.Setenv("TERMIFY_LOG_LEVEL", "debug")
	t.Setenv("TERMIFY_TOKEN", "secret")
	t.Setenv("TERMIFY_SESSION_SNAPSHOT_INTERVAL_MS", "250")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, LayoutStoreRemote, cfg.Layout.Store)
	assert.Equal(t, 0.3, cfg.Layout.DropCenterFraction)
	assert.True(t, cfg.Layout.UniqueTerminalPanes)
	assert.Equal(t, "https://termify.example.com", cfg.API.BaseURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "secret", cfg.API.Token)
	assert.Equal(t, 250, cfg.Session.SnapshotIntervalMs)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	root := isolateXDG(t)
	configDir := filepath.Join(root, "config", "termify")
	require.NoError(t, os.MkdirAll(configDir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`
[layout]
drop_center_fraction = 1.5
`), filePerm))

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.drop_center_fraction")
}

func TestManager_GetReturnsCopy(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Layout.DropCenterFraction = 0.9

	assert.Equal(t, defaultDropCenterFraction, mgr.Get().Layout.DropCenterFraction)
}

func TestManager_SaveWritesAndNotifies(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	notified := make(chan *Config, 1)
	mgr.OnConfigChange(func(c *Config) { notified <- c })

	cfg := mgr.Get()
	cfg.Layout.UniqueTerminalPanes = true
	require.NoError(t, mgr.Save(cfg))

	select {
	case got := <-notified:
		assert.True(t, got.Layout.UniqueTerminalPanes)
	case <-time.After(time.Second):
		t.Fatal("callback not invoked")
	}
	assert.True(t, mgr.Get().Layout.UniqueTerminalPanes)

	reloaded, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.True(t, reloaded.Get().Layout.UniqueTerminalPanes)
}

func TestManager_SaveRejectsInvalid(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Error(t, mgr.Save(nil))

	cfg := mgr.Get()
	cfg.Session.SnapshotIntervalMs = -1
	assert.Error(t, mgr.Save(cfg))
	assert.Equal(t, 1000, mgr.Get().Session.SnapshotIntervalMs)
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "local", mgr.viper.GetString("layout.store"))
	assert.Equal(t, defaultDropCenterFraction, mgr.viper.GetFloat64("layout.drop_center_fraction"))
	assert.True(t, mgr.viper.GetBool("session.restore_last_workspace"))
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.Store = " Remote "
	cfg.Logging.Level = "DEBUG"
	cfg.API.BaseURL = "http://host:1/"

	normalizeConfig(cfg)

	assert.Equal(t, LayoutStoreRemote, cfg.Layout.Store)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "http://host:1", cfg.API.BaseURL)

	cfg.Layout.Store = ""
	normalizeConfig(cfg)
	assert.Equal(t, LayoutStoreLocal, cfg.Layout.Store)
}
