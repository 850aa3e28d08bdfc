package xdg

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_HonorsXDGVariables(t *testing.T) {
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "c"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "d"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "s"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "k"))

	adapter := New()

	tests := []struct {
		name string
		get  func() (string, error)
		want string
	}{
		{"config", adapter.ConfigDir, filepath.Join(root, "c", "termify")},
		{"data", adapter.DataDir, filepath.Join(root, "d", "termify")},
		{"state", adapter.StateDir, filepath.Join(root, "s", "termify")},
		{"cache", adapter.CacheDir, filepath.Join(root, "k", "termify")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, err := tt.get()
			require.NoError(t, err)
			assert.Equal(t, tt.want, dir)
		})
	}
}

func TestAdapter_FallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_CACHE_HOME", "")

	adapter := New()

	dir, err := adapter.ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "termify"), dir)

	dir, err = adapter.CacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".cache", "termify"), dir)
}
