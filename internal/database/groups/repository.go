// Package groups provides database operations for attendee groups.
//
// Groups are the only entity an import creates implicitly: a session or
// attendee row naming an unknown group creates it via GetOrCreateGroup.
//
// # Usage
//
//	repo := groups.NewRepository(db)
//	group, err := repo.GetOrCreateGroup(ctx, eventID, "VIP")
package groups

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/eventadmin/internal/database/dberr"
	"github.com/mrlokans/eventadmin/internal/entities"
)

// Repository handles all group database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new groups repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateGroup creates a new group.
func (r *Repository) CreateGroup(ctx context.Context, group *entities.Group) error {
	return dberr.Translate(r.db.WithContext(ctx).Create(group).Error)
}

// GetOrCreateGroup retrieves or creates a group (case-insensitive).
// A concurrent import that wins the insert race is handled by looking the
// group up again after the duplicate error.
func (r *Repository) GetOrCreateGroup(ctx context.Context, eventID uint, name string) (*entities.Group, error) {
	group, err := r.findByName(ctx, eventID, name)
	if err == nil {
		return group, nil
	}
	if !errors.Is(err, entities.ErrNotFound) {
		return nil, err
	}

	group = &entities.Group{EventID: eventID, Name: name}
	err = r.CreateGroup(ctx, group)
	if errors.Is(err, entities.ErrDuplicate) {
		return r.findByName(ctx, eventID, name)
	}
	if err != nil {
		return nil, err
	}
	return group, nil
}

func (r *Repository) findByName(ctx context.Context, eventID uint, name string) (*entities.Group, error) {
	var group entities.Group
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND LOWER(name) = LOWER(?)", eventID, name).
		First(&group).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return &group, nil
}

// ListGroups retrieves all groups for an event.
func (r *Repository) ListGroups(ctx context.Context, eventID uint) ([]entities.Group, error) {
	var groups []entities.Group
	err := r.db.WithContext(ctx).Where("event_id = ?", eventID).Order("name").Find(&groups).Error
	return groups, err
}

// CountMembers returns attendee counts keyed by group id.
func (r *Repository) CountMembers(ctx context.Context, eventID uint) (map[uint]int64, error) {
	var rows []struct {
		GroupID uint
		Count   int64
	}
	err := r.db.WithContext(ctx).
		Table("attendee_groups").
		Select("attendee_groups.group_id, COUNT(*) AS count").
		Joins("JOIN event_groups ON event_groups.id = attendee_groups.group_id").
		Where("event_groups.event_id = ?", eventID).
		Group("attendee_groups.group_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.GroupID] = row.Count
	}
	return counts, nil
}
