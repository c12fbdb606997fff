package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/eventadmin/internal/database/attendees"
	"github.com/mrlokans/eventadmin/internal/database/exhibitors"
	"github.com/mrlokans/eventadmin/internal/database/groups"
	"github.com/mrlokans/eventadmin/internal/database/sessions"
	"github.com/mrlokans/eventadmin/internal/database/speakers"
	"github.com/mrlokans/eventadmin/internal/database/sponsors"
	"github.com/mrlokans/eventadmin/internal/entities"
)

// GroupSummary is a group with its member count.
type GroupSummary struct {
	entities.Group
	Members int64 `json:"members"`
}

// Catalog reads back what imports created.
type Catalog struct {
	speakers   *speakers.Repository
	sessions   *sessions.Repository
	exhibitors *exhibitors.Repository
	sponsors   *sponsors.Repository
	groups     *groups.Repository
	attendees  *attendees.Repository
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{
		speakers:   speakers.NewRepository(db),
		sessions:   sessions.NewRepository(db),
		exhibitors: exhibitors.NewRepository(db),
		sponsors:   sponsors.NewRepository(db),
		groups:     groups.NewRepository(db),
		attendees:  attendees.NewRepository(db),
	}
}

// List returns every record of kind in an event.
func (c *Catalog) List(ctx context.Context, eventID uint, kind entities.ImportKind) (any, error) {
	switch kind {
	case entities.ImportKindSpeakers:
		return c.speakers.ListSpeakers(ctx, eventID)
	case entities.ImportKindSessions:
		return c.sessions.ListSessions(ctx, eventID)
	case entities.ImportKindExhibitors:
		return c.exhibitors.ListExhibitors(ctx, eventID)
	case entities.ImportKindSponsors:
		return c.sponsors.ListSponsors(ctx, eventID)
	case entities.ImportKindGroups:
		return c.listGroups(ctx, eventID)
	case entities.ImportKindAttendees:
		return c.attendees.ListAttendees(ctx, eventID)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func (c *Catalog) listGroups(ctx context.Context, eventID uint) ([]GroupSummary, error) {
	list, err := c.groups.ListGroups(ctx, eventID)
	if err != nil {
		return nil, err
	}
	counts, err := c.groups.CountMembers(ctx, eventID)
	if err != nil {
		return nil, err
	}

	summaries := make([]GroupSummary, len(list))
	for i, g := range list {
		summaries[i] = GroupSummary{Group: g, Members: counts[g.ID]}
	}
	return summaries, nil
}

// SpeakerCount is shown on the event overview.
func (c *Catalog) SpeakerCount(ctx context.Context, eventID uint) (int64, error) {
	return c.speakers.CountSpeakers(ctx, eventID)
}
