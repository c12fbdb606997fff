// Package attendees provides database operations for registered attendees
// and their group memberships.
package attendees

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/eventadmin/internal/database/dberr"
	"github.com/mrlokans/eventadmin/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateAttendee(ctx context.Context, attendee *entities.Attendee) error {
	return dberr.Translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(attendee).Error)
}

func (r *Repository) ListAttendees(ctx context.Context, eventID uint) ([]entities.Attendee, error) {
	var attendees []entities.Attendee
	err := r.db.WithContext(ctx).Preload("Groups").Where("event_id = ?", eventID).Order("id").Find(&attendees).Error
	return attendees, err
}

func (r *Repository) AddAttendeeGroups(ctx context.Context, attendeeID uint, groupIDs []uint) error {
	if len(groupIDs) == 0 {
		return nil
	}

	links := make([]entities.AttendeeGroup, len(groupIDs))
	for i, id := range groupIDs {
		links[i] = entities.AttendeeGroup{AttendeeID: attendeeID, GroupID: id}
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
}
