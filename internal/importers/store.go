package importers

import (
	"context"

	"github.com/mrlokans/eventadmin/internal/entities"
)

// Create methods must return an error wrapping entities.ErrDuplicate on a
// uniqueness violation.

type SpeakerStore interface {
	CreateSpeaker(ctx context.Context, speaker *entities.Speaker) error
	ListSpeakers(ctx context.Context, eventID uint) ([]entities.Speaker, error)
}

type SessionStore interface {
	CreateSession(ctx context.Context, session *entities.Session) error
	AddSessionSpeakers(ctx context.Context, sessionID uint, speakerIDs []uint) error
	AddSessionGroups(ctx context.Context, sessionID uint, groupIDs []uint) error
}

type ExhibitorStore interface {
	CreateExhibitor(ctx context.Context, exhibitor *entities.Exhibitor) error
}

type SponsorStore interface {
	CreateSponsor(ctx context.Context, sponsor *entities.Sponsor) error
}

type GroupStore interface {
	CreateGroup(ctx context.Context, group *entities.Group) error
	GetOrCreateGroup(ctx context.Context, eventID uint, name string) (*entities.Group, error)
	ListGroups(ctx context.Context, eventID uint) ([]entities.Group, error)
}

type AttendeeStore interface {
	CreateAttendee(ctx context.Context, attendee *entities.Attendee) error
	AddAttendeeGroups(ctx context.Context, attendeeID uint, groupIDs []uint) error
}

// Stores bundles the persistence collaborators used by an Importer.
type Stores struct {
	Speakers   SpeakerStore
	Sessions   SessionStore
	Exhibitors ExhibitorStore
	Sponsors   SponsorStore
	Groups     GroupStore
	Attendees  AttendeeStore
}
