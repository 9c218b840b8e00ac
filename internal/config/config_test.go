package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "./SavedScoops.yaml", cfg.Snapshot.Path)
	assert.False(t, cfg.Snapshot.Disabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_IDLE_TIMEOUT", "2m")
	t.Setenv("SNAPSHOT_PATH", "/tmp/board.yaml")
	t.Setenv("SNAPSHOT_DISABLED", "true")
	t.Setenv("LOG_FORMAT", "pretty")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 2*time.Minute, cfg.Server.IdleTimeout)
	assert.Equal(t, "/tmp/board.yaml", cfg.Snapshot.Path)
	assert.True(t, cfg.Snapshot.Disabled)
	assert.Equal(t, "pretty", cfg.Log.Format)
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("SERVER_IDLE_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: "4000"}, Snapshot: SnapshotConfig{Path: "x.yaml"}}
	assert.NoError(t, cfg.Validate())

	cfg.Server.Port = ""
	assert.Error(t, cfg.Validate())

	cfg.Server.Port = "4000"
	cfg.Snapshot.Path = ""
	assert.Error(t, cfg.Validate())

	cfg.Snapshot.Disabled = true
	assert.NoError(t, cfg.Validate())
}
