// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/accesspaper/internal/secrets"
	"github.com/pdiddy/accesspaper/pkg/types"
)

// freshConfig resets viper and runs initConfig from an empty directory.
func freshConfig(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)
	initConfig()
}

func TestLoadConfig_Defaults(t *testing.T) {
	freshConfig(t)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, types.DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, types.DefaultBackendURL, cfg.Search.BackendURL)
	assert.Equal(t, types.DefaultUserAgent, cfg.Search.UserAgent)
	assert.Equal(t, types.LogBackendFirestore, cfg.LogStore.Backend)
	assert.Equal(t, types.DefaultSessionTTL, cfg.UI.SessionTTL)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("ACCESSPAPER_SEARCH_BACKEND_URL", "http://localhost:9000")
	t.Setenv("ACCESSPAPER_LOGSTORE_BACKEND", "sqlite")
	t.Setenv("ACCESSPAPER_UI_SHOW_LOGS", "true")
	t.Setenv("ACCESSPAPER_SEARCH_TIMEOUT", "5s")
	freshConfig(t)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", cfg.Search.BackendURL)
	assert.Equal(t, types.LogBackendSQLite, cfg.LogStore.Backend)
	assert.True(t, cfg.UI.ShowLogs)
	assert.Equal(t, 5*time.Second, cfg.Search.Timeout)
}

func TestLoadConfig_File(t *testing.T) {
	freshConfig(t)
	viper.Reset()

	path := filepath.Join(t.TempDir(), "accesspaper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
logstore:
  backend: sqlite
  sqlite_path: /tmp/logs.db
ui:
  session_ttl: 5m
`), 0o644))
	require.NoError(t, rootCmd.PersistentFlags().Set("config", path))
	t.Cleanup(func() { rootCmd.PersistentFlags().Set("config", "") })
	initConfig()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "/tmp/logs.db", cfg.LogStore.SQLitePath)
	assert.Equal(t, 5*time.Minute, cfg.UI.SessionTTL)
}

func TestCredential(t *testing.T) {
	t.Setenv(secrets.ServiceAccountEnv, `{"project_id":"from-env"}`)
	freshConfig(t)
	loadedSecrets = map[string]string{}

	cred, err := credential(types.Config{LogStore: types.LogStoreConfig{Backend: types.LogBackendFirestore}})
	require.NoError(t, err)
	assert.Equal(t, "from-env", cred.ProjectID)

	cred, err = credential(types.Config{LogStore: types.LogStoreConfig{Backend: types.LogBackendSQLite}})
	require.NoError(t, err)
	assert.Nil(t, cred)
}
