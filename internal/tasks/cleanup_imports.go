package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"
	"go.uber.org/zap"
)

// ImportSessionCleaner deletes finished import sessions.
type ImportSessionCleaner interface {
	DeleteOldImportSessions(ctx context.Context, olderThan time.Time) (int64, error)
}

// CleanupImportSessionsTask removes finished import history older than the
// retention period.
type CleanupImportSessionsTask struct {
	RetentionDays int `json:"retention_days"`
}

func (t CleanupImportSessionsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "cleanup_import_sessions",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

func CleanupImportSessionsProcessor(cleaner ImportSessionCleaner, recorder CleanupRecorder, log *zap.Logger) backlite.QueueProcessor[CleanupImportSessionsTask] {
	return func(ctx context.Context, task CleanupImportSessionsTask) error {
		if cleaner == nil {
			return fmt.Errorf("import session cleaner not configured")
		}

		retentionDays := retentionOrDefault(task.RetentionDays, 180)
		deleted, err := cleaner.DeleteOldImportSessions(ctx, time.Now().AddDate(0, 0, -retentionDays))
		if recorder != nil {
			recorder.LogCleanup(ctx, "import_sessions_cleanup", deleted, err)
		}
		if err != nil {
			return fmt.Errorf("cleanup import sessions: %w", err)
		}

		log.Info("cleaned up import sessions", zap.Int64("deleted", deleted), zap.Int("retention_days", retentionDays))
		return nil
	}
}

func NewCleanupImportSessionsQueue(cleaner ImportSessionCleaner, recorder CleanupRecorder, log *zap.Logger) backlite.Queue {
	if log == nil {
		log = zap.NewNop()
	}
	return backlite.NewQueue(CleanupImportSessionsProcessor(cleaner, recorder, log))
}
