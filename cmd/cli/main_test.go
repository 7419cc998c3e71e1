package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCmd_PrintsMatches(t *testing.T) {
	t.Setenv("HEROES_STORAGE_SIMULATED_LATENCY", "0s")

	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"find", "--name", "Wonder"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.JSONEq(t, `[{"id":"1","name":"Wonder Woman"}]`, out.String())
}

func TestFindCmd_AllWithoutName(t *testing.T) {
	t.Setenv("HEROES_STORAGE_SIMULATED_LATENCY", "0s")

	var out bytes.Buffer
	require.NoError(t, runFind(context.Background(), &out, "", false))
	assert.JSONEq(t, `[{"id":"1","name":"Wonder Woman"},{"id":"2","name":"Deadpool"}]`, out.String())
}

func TestFindCmd_NotFound(t *testing.T) {
	t.Setenv("HEROES_STORAGE_SIMULATED_LATENCY", "0s")

	var out bytes.Buffer
	err := runFind(context.Background(), &out, "Spider", true)
	assert.EqualError(t, err, "no hero matches")
	assert.Empty(t, out.String())
}

func TestMigrateCmd_SQLite(t *testing.T) {
	t.Setenv("HEROES_STORAGE_DRIVER", "sqlite")
	t.Setenv("HEROES_STORAGE_DATABASE_PATH", filepath.Join(t.TempDir(), "heroes.db"))

	var out bytes.Buffer
	require.NoError(t, runMigrate(context.Background(), &out))
	assert.Equal(t, "sqlite storage migrated\n", out.String())

	out.Reset()
	require.NoError(t, runFind(context.Background(), &out, "Deadpool", true))
	assert.JSONEq(t, `[{"id":"2","name":"Deadpool"}]`, out.String())
}

func TestMigrateCmd_MemoryRejected(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, runMigrate(context.Background(), &out))
}
