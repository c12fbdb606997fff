package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, int32(8188), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, int64(DefaultMaxUploadBytes), cfg.HTTP.MaxUploadBytes)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, 20, cfg.Import.MaxErrorsShown)
	assert.Equal(t, 100, cfg.Import.MaxStoredErrors)
	assert.True(t, cfg.Tasks.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Tasks.ReleaseAfter)
	assert.Equal(t, "0 3 * * *", cfg.Scheduler.AuditCleanupCron)
	assert.Equal(t, 90, cfg.Audit.RetentionDays)
	assert.Equal(t, 5*time.Second, cfg.Global.ShutdownTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig_Env(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("DATABASE_PATH", "/tmp/events.db")
	t.Setenv("TASKS_ENABLED", "false")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg := NewConfig()

	assert.Equal(t, int32(9000), cfg.HTTP.Port)
	assert.Equal(t, "/tmp/events.db", cfg.Database.Path)
	assert.False(t, cfg.Tasks.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Global.ShutdownTimeout)
}

func TestValidate(t *testing.T) {
	cfg := NewConfig()
	cfg.HTTP.Port = 0
	cfg.Import.MaxStoredErrors = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_PORT")
	assert.Contains(t, err.Error(), "IMPORT_MAX_STORED_ERRORS")
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("LOG_LEVEL") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
