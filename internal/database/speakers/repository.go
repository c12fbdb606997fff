// Package speakers provides database operations for event speakers.
package speakers

import (
	"context"

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

// CreateSpeaker returns entities.ErrDuplicate when the email is already
// registered for the event.
func (r *Repository) CreateSpeaker(ctx context.Context, speaker *entities.Speaker) error {
	return dberr.Translate(r.db.WithContext(ctx).Create(speaker).Error)
}

func (r *Repository) ListSpeakers(ctx context.Context, eventID uint) ([]entities.Speaker, error) {
	var speakers []entities.Speaker
	err := r.db.WithContext(ctx).Where("event_id = ?", eventID).Order("id").Find(&speakers).Error
	return speakers, err
}

func (r *Repository) CountSpeakers(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Speaker{}).Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}
