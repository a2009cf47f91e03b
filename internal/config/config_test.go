package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/nordgrid/sweref/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestMustLoad_FromEnv(t *testing.T) {
	t.Setenv("SWEREF_ENV", "local")
	t.Setenv("SWEREF_INTERVAL", "10m")
	t.Setenv("SWEREF_ENGINE", "proj")
	t.Setenv("SWEREF_OFFLINE", "true")
	t.Setenv("SWEREF_BATCH", "true")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "proj", cfg.EngineType)
	assert.True(t, cfg.Offline)
	assert.True(t, cfg.Batch)
	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
	assert.Equal(t, 10*time.Minute, cfg.Interval)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 10, cfg.Workers)
}

func TestMustLoad_Defaults(t *testing.T) {
	cfg := config.MustLoad()

	assert.Equal(t, "auto", cfg.EngineType)
	assert.False(t, cfg.Offline)
	assert.False(t, cfg.Batch)
	assert.Equal(t, 10, cfg.Workers)
	assert.Equal(t, 10*time.Minute, cfg.Interval)
}

func TestMustLoad_DotEnvFile(t *testing.T) {
	defer filet.CleanUp(t)
	defer os.Unsetenv("SWEREF_ENGINE")

	filet.File(t, ".env", "SWEREF_ENGINE=embedded\n")

	cfg := config.MustLoad()

	assert.Equal(t, "embedded", cfg.EngineType)
}

func TestMustLoad_IntervalError(t *testing.T) {
	t.Setenv("SWEREF_INTERVAL", "error_value")

	assert.PanicsWithValue(t, "failed to parse interval from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_PortError(t *testing.T) {
	t.Setenv("SWEREF_HEALTH_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse port for monitoring server from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_WorkersError(t *testing.T) {
	t.Setenv("SWEREF_WORKERS", "error_value")

	assert.PanicsWithValue(t, "failed to parse workers from configuration", func() {
		config.MustLoad()
	})
}
