package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, 100*time.Millisecond, cfg.Storage.SimulatedLatency)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HEROES_SERVER_PORT", "9090")
	t.Setenv("HEROES_STORAGE_DRIVER", "sqlite")
	t.Setenv("HEROES_STORAGE_SIMULATED_LATENCY", "250ms")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, 250*time.Millisecond, cfg.Storage.SimulatedLatency)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := []byte(`
server:
  port: 7070
storage:
  driver: sqlite
  database_path: /tmp/heroes-test.db
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, yaml, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/heroes-test.db", cfg.Storage.DatabasePath)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedSearchedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte("server: [port: 7070\n"), 0644))
	t.Chdir(dir)

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_SearchedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server:\n  port: 6060\n"), 0644))
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Server.Port)
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("HEROES_STORAGE_DRIVER", "mongodb")

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Server:  ServerConfig{Host: "0.0.0.0", Port: 8080},
		Storage: StorageConfig{Driver: "memory"},
	}
	assert.NoError(t, valid.Validate())

	badPort := valid
	badPort.Server.Port = 70000
	assert.Error(t, badPort.Validate())

	mysqlNoDSN := valid
	mysqlNoDSN.Storage.Driver = "mysql"
	assert.Error(t, mysqlNoDSN.Validate())

	mysqlNoDSN.Storage.DSN = "user:pass@tcp(localhost:3306)/heroes"
	assert.NoError(t, mysqlNoDSN.Validate())

	negative := valid
	negative.Storage.SimulatedLatency = -time.Second
	assert.Error(t, negative.Validate())
}
