// Package imports stores the history of bulk import runs.
package imports

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/eventadmin/internal/database/dberr"
	"github.com/mrlokans/eventadmin/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateImportSession(ctx context.Context, session *entities.ImportSession) error {
	if session.StartedAt.IsZero() {
		session.StartedAt = time.Now()
	}
	return dberr.Translate(r.db.WithContext(ctx).Create(session).Error)
}

// UpdateImportSession writes the progress columns. The task id is owned by
// SetImportTaskID so a worker and the enqueuer never overwrite each other.
func (r *Repository) UpdateImportSession(ctx context.Context, session *entities.ImportSession) error {
	return r.db.WithContext(ctx).
		Model(session).
		Select("status", "row_count", "created", "error_count", "errors", "started_at", "completed_at").
		Updates(session).Error
}

func (r *Repository) SetImportTaskID(ctx context.Context, id uint, taskID string) error {
	return r.db.WithContext(ctx).
		Model(&entities.ImportSession{}).
		Where("id = ?", id).
		Update("task_id", taskID).Error
}

func (r *Repository) GetImportSession(ctx context.Context, id uint) (*entities.ImportSession, error) {
	var session entities.ImportSession
	if err := r.db.WithContext(ctx).First(&session, id).Error; err != nil {
		return nil, dberr.Translate(err)
	}
	return &session, nil
}

// ListImportSessions returns the most recent runs for an event.
func (r *Repository) ListImportSessions(ctx context.Context, eventID uint, limit int) ([]entities.ImportSession, error) {
	if limit <= 0 {
		limit = 50
	}
	var sessions []entities.ImportSession
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("started_at DESC").Order("id DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

// DeleteOldImportSessions removes finished runs started before olderThan.
// Queued and running sessions are kept regardless of age.
func (r *Repository) DeleteOldImportSessions(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("started_at < ? AND status IN ?", olderThan, []entities.ImportStatus{entities.ImportStatusCompleted, entities.ImportStatusFailed}).
		Delete(&entities.ImportSession{})
	return result.RowsAffected, result.Error
}
