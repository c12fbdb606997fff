// Package events provides database operations for events, the parent
// scope of every imported record.
package events

import (
	"context"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/eventadmin/internal/database/dberr"
	"github.com/mrlokans/eventadmin/internal/entities"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Repository handles all event database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new events repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateEvent creates an event, deriving the slug from the name when empty.
func (r *Repository) CreateEvent(ctx context.Context, event *entities.Event) error {
	if event.Slug == "" {
		event.Slug = Slugify(event.Name)
	}
	return dberr.Translate(r.db.WithContext(ctx).Create(event).Error)
}

// GetEventByID returns entities.ErrNotFound for unknown ids.
func (r *Repository) GetEventByID(ctx context.Context, id uint) (*entities.Event, error) {
	var event entities.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, dberr.Translate(err)
	}
	return &event, nil
}

// ListEvents returns all events, newest first.
func (r *Repository) ListEvents(ctx context.Context) ([]entities.Event, error) {
	var events []entities.Event
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&events).Error
	return events, err
}

// Slugify lowercases name and collapses everything that is not a letter or
// digit into single dashes.
func Slugify(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
