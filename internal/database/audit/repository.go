package audit

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/eventadmin/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LogEvent saves an audit event to the database.
func (r *Repository) LogEvent(ctx context.Context, event *entities.AuditEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(event).Error
}

// GetEvents retrieves paginated audit events, most recent first. An eventID
// of zero returns entries for all events.
func (r *Repository) GetEvents(ctx context.Context, eventID uint, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return r.page(ctx, r.scoped(ctx, eventID), limit, offset)
}

// GetEventsByType retrieves audit events filtered by type.
func (r *Repository) GetEventsByType(ctx context.Context, eventType entities.AuditEventType, eventID uint, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return r.page(ctx, r.scoped(ctx, eventID).Where("event_type = ?", eventType), limit, offset)
}

// DeleteOldEvents removes audit events older than the specified time.
// Returns the number of deleted events.
func (r *Repository) DeleteOldEvents(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", olderThan).Delete(&entities.AuditEvent{})
	return result.RowsAffected, result.Error
}

func (r *Repository) scoped(ctx context.Context, eventID uint) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entities.AuditEvent{})
	if eventID > 0 {
		query = query.Where("event_id = ?", eventID)
	}
	return query
}

func (r *Repository) page(_ context.Context, query *gorm.DB, limit, offset int) ([]entities.AuditEvent, int64, error) {
	var events []entities.AuditEvent
	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}
