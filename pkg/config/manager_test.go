//go:build unit

package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfig_DefaultsWhenMissing(t *testing.T) {
	manager := NewManager(t.TempDir())

	cfg, err := manager.GetConfig()
	require.NoError(t, err)
	assert.True(t, cfg.CheckForUpdates)
	assert.Empty(t, cfg.APIURL)
	assert.Zero(t, cfg.LastUpdateCheck)
}

func TestConfig_RoundTrip(t *testing.T) {
	manager := NewManager(t.TempDir())

	saved := Config{
		APIURL:          "https://api.staging.detail.dev",
		CheckForUpdates: false,
		LastUpdateCheck: 1700000000,
	}
	require.NoError(t, manager.SaveConfig(saved))

	loaded, err := manager.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestGetConfig_ParseError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0o644))

	manager := NewManager(dir)
	_, err := manager.GetConfig()
	assert.ErrorIs(t, err, ErrConfigParse)
}

func TestToken_RoundTrip(t *testing.T) {
	manager := NewManager(t.TempDir())

	require.NoError(t, manager.SaveToken("dtl_live_abc123"))

	token, err := manager.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "dtl_live_abc123", token)
}

func TestSaveToken_OwnerOnlyPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	dir := t.TempDir()
	manager := NewManager(dir)
	require.NoError(t, manager.SaveToken("dtl_live_abc123"))

	info, err := os.Stat(filepath.Join(dir, "credentials.yaml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadToken_NotAuthenticated(t *testing.T) {
	manager := NewManager(t.TempDir())

	_, err := manager.LoadToken()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestLoadToken_EmptyTokenTreatedAsMissing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "credentials.yaml"), []byte("token: \"\"\n"), 0o600))

	manager := NewManager(dir)
	_, err := manager.LoadToken()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestClearToken(t *testing.T) {
	manager := NewManager(t.TempDir())

	require.NoError(t, manager.SaveToken("dtl_live_abc123"))
	require.NoError(t, manager.ClearToken())

	_, err := manager.LoadToken()
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	// Clearing again is not an error.
	assert.NoError(t, manager.ClearToken())
}
