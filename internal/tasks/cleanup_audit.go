package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"
	"go.uber.org/zap"
)

// AuditEventCleaner provides the ability to delete old audit events.
type AuditEventCleaner interface {
	DeleteOldEvents(ctx context.Context, retention time.Duration) (int64, error)
}

// CleanupRecorder records the outcome of a cleanup run in the audit log.
type CleanupRecorder interface {
	LogCleanup(ctx context.Context, action string, deleted int64, err error)
}

// CleanupAuditEventsTask removes audit events older than the configured retention period.
type CleanupAuditEventsTask struct {
	RetentionDays int `json:"retention_days"`
}

// Config returns the queue configuration for audit cleanup tasks.
func (t CleanupAuditEventsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "cleanup_audit_events",
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

// CleanupAuditEventsProcessor creates a processor function for CleanupAuditEventsTask.
func CleanupAuditEventsProcessor(cleaner AuditEventCleaner, recorder CleanupRecorder, log *zap.Logger) backlite.QueueProcessor[CleanupAuditEventsTask] {
	return func(ctx context.Context, task CleanupAuditEventsTask) error {
		if cleaner == nil {
			return fmt.Errorf("audit event cleaner not configured")
		}

		retentionDays := retentionOrDefault(task.RetentionDays, 90)
		deleted, err := cleaner.DeleteOldEvents(ctx, time.Duration(retentionDays)*24*time.Hour)
		if recorder != nil {
			recorder.LogCleanup(ctx, "audit_cleanup", deleted, err)
		}
		if err != nil {
			return fmt.Errorf("cleanup audit events: %w", err)
		}

		log.Info("cleaned up audit events", zap.Int64("deleted", deleted), zap.Int("retention_days", retentionDays))
		return nil
	}
}

// NewCleanupAuditEventsQueue creates a backlite queue for audit cleanup tasks.
func NewCleanupAuditEventsQueue(cleaner AuditEventCleaner, recorder CleanupRecorder, log *zap.Logger) backlite.Queue {
	if log == nil {
		log = zap.NewNop()
	}
	return backlite.NewQueue(CleanupAuditEventsProcessor(cleaner, recorder, log))
}

func retentionOrDefault(days, fallback int) int {
	if days <= 0 {
		return fallback
	}
	return days
}
