// Package sessions provides database operations for agenda sessions and
// their speaker and group assignments.
package sessions

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

// CreateSession returns entities.ErrDuplicate when a session with the same
// title already occupies the date and start time.
func (r *Repository) CreateSession(ctx context.Context, session *entities.Session) error {
	return dberr.Translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(session).Error)
}

// ListSessions returns sessions in agenda order with assignments preloaded.
func (r *Repository) ListSessions(ctx context.Context, eventID uint) ([]entities.Session, error) {
	var sessions []entities.Session
	err := r.db.WithContext(ctx).
		Preload("Speakers", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Groups").
		Where("event_id = ?", eventID).
		Order("date").Order("start_time").
		Find(&sessions).Error
	return sessions, err
}

// AddSessionSpeakers assigns speakers in the given order. Position starts
// after any speakers already assigned; repeated assignments are ignored.
func (r *Repository) AddSessionSpeakers(ctx context.Context, sessionID uint, speakerIDs []uint) error {
	if len(speakerIDs) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var offset int64
		if err := tx.Model(&entities.SessionSpeaker{}).Where("session_id = ?", sessionID).Count(&offset).Error; err != nil {
			return err
		}

		links := make([]entities.SessionSpeaker, len(speakerIDs))
		for i, id := range speakerIDs {
			links[i] = entities.SessionSpeaker{SessionID: sessionID, SpeakerID: id, Position: int(offset) + i}
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
	})
}

func (r *Repository) AddSessionGroups(ctx context.Context, sessionID uint, groupIDs []uint) error {
	if len(groupIDs) == 0 {
		return nil
	}

	links := make([]entities.SessionGroup, len(groupIDs))
	for i, id := range groupIDs {
		links[i] = entities.SessionGroup{SessionID: sessionID, GroupID: id}
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
}
