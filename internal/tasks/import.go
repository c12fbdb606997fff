package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"
	"go.uber.org/zap"
)

// ImportRunner executes an import session that was queued earlier.
type ImportRunner interface {
	RunQueued(ctx context.Context, sessionID uint, content string) error
}

// ImportTask runs one bulk import out of the request path. The CSV text
// travels in the task payload.
type ImportTask struct {
	SessionID uint   `json:"session_id"`
	Content   string `json:"content"`
}

// Config returns the queue configuration for import tasks. Imports are not
// retried: a second attempt would report every already created row as a
// duplicate.
func (t ImportTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "bulk_import",
		MaxAttempts: 1,
		Timeout:     30 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// ImportProcessor creates a processor function for ImportTask.
func ImportProcessor(runner ImportRunner, log *zap.Logger) backlite.QueueProcessor[ImportTask] {
	return func(ctx context.Context, task ImportTask) error {
		if runner == nil {
			return fmt.Errorf("import runner not configured")
		}

		start := time.Now()
		if err := runner.RunQueued(ctx, task.SessionID, task.Content); err != nil {
			return fmt.Errorf("import session %d: %w", task.SessionID, err)
		}

		log.Info("queued import finished",
			zap.Uint("session_id", task.SessionID),
			zap.Duration("took", time.Since(start)),
		)
		return nil
	}
}

// NewImportQueue creates a backlite queue for import tasks.
func NewImportQueue(runner ImportRunner, log *zap.Logger) backlite.Queue {
	if log == nil {
		log = zap.NewNop()
	}
	return backlite.NewQueue(ImportProcessor(runner, log))
}
