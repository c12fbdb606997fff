package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Logging
		Import
		Tasks
		Scheduler
		Audit
		Global
	}

	HTTP struct {
		Port           int32
		Host           string
		MaxUploadBytes int64
	}
	Database struct {
		Path string
	}
	Logging struct {
		Level  string
		Format string // "json" or "console"
	}
	Import struct {
		MaxErrorsShown  int // Errors returned in an HTTP response
		MaxStoredErrors int // Errors kept on the import session row
		ArchiveDir      string
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	Scheduler struct {
		Enabled           bool
		AuditCleanupCron  string // Cron format: "0 3 * * *" = daily at 03:00
		ImportCleanupCron string
	}
	Audit struct {
		RetentionDays       int // Days to keep audit events (default: 90)
		ImportRetentionDays int // Days to keep finished import sessions (default: 180)
	}
	Global struct {
		ShutdownTimeout time.Duration
	}
)

// Load reads envFiles into the process environment, ignoring missing ones,
// then builds the config.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("http_port", 8188)
	v.SetDefault("http_host", "0.0.0.0")
	v.SetDefault("http_max_upload_bytes", DefaultMaxUploadBytes)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("import_max_errors_shown", 20)
	v.SetDefault("import_max_stored_errors", 100)
	v.SetDefault("import_archive_dir", "")
	v.SetDefault("shutdown_timeout", "5s")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	v.SetDefault("scheduler_enabled", true)
	v.SetDefault("audit_cleanup_cron", "0 3 * * *")
	v.SetDefault("import_cleanup_cron", "30 3 * * *")
	v.SetDefault("audit_retention_days", 90)
	v.SetDefault("import_retention_days", 180)

	return &Config{
		HTTP: HTTP{
			Port:           v.GetInt32("HTTP_PORT"),
			Host:           v.GetString("HTTP_HOST"),
			MaxUploadBytes: v.GetInt64("HTTP_MAX_UPLOAD_BYTES"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Logging: Logging{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Import: Import{
			MaxErrorsShown:  v.GetInt("IMPORT_MAX_ERRORS_SHOWN"),
			MaxStoredErrors: v.GetInt("IMPORT_MAX_STORED_ERRORS"),
			ArchiveDir:      v.GetString("IMPORT_ARCHIVE_DIR"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Scheduler: Scheduler{
			Enabled:           v.GetBool("SCHEDULER_ENABLED"),
			AuditCleanupCron:  v.GetString("AUDIT_CLEANUP_CRON"),
			ImportCleanupCron: v.GetString("IMPORT_CLEANUP_CRON"),
		},
		Audit: Audit{
			RetentionDays:       v.GetInt("AUDIT_RETENTION_DAYS"),
			ImportRetentionDays: v.GetInt("IMPORT_RETENTION_DAYS"),
		},
		Global: Global{
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.HTTP.Port))
	}
	if c.HTTP.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("HTTP_MAX_UPLOAD_BYTES must be positive, got %d", c.HTTP.MaxUploadBytes))
	}
	if c.Database.Path == "" {
		errs = append(errs, errors.New("DATABASE_PATH must not be empty"))
	}
	if c.Import.MaxErrorsShown <= 0 {
		errs = append(errs, fmt.Errorf("IMPORT_MAX_ERRORS_SHOWN must be positive, got %d", c.Import.MaxErrorsShown))
	}
	if c.Import.MaxStoredErrors <= 0 {
		errs = append(errs, fmt.Errorf("IMPORT_MAX_STORED_ERRORS must be positive, got %d", c.Import.MaxStoredErrors))
	}
	if c.Tasks.Enabled && c.Tasks.Workers <= 0 {
		errs = append(errs, fmt.Errorf("TASK_WORKERS must be positive, got %d", c.Tasks.Workers))
	}
	if c.Audit.RetentionDays <= 0 || c.Audit.ImportRetentionDays <= 0 {
		errs = append(errs, errors.New("retention days must be positive"))
	}
	return errors.Join(errs...)
}
