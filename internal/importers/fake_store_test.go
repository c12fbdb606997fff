package importers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mrlokans/eventadmin/internal/entities"
)

// memStore is an in-memory persistence collaborator enforcing the same
// uniqueness rules as the sqlite schema.
type memStore struct {
	nextID uint

	speakers   []entities.Speaker
	sessions   []entities.Session
	exhibitors []entities.Exhibitor
	sponsors   []entities.Sponsor
	groups     []entities.Group
	attendees  []entities.Attendee

	sessionSpeakers map[uint][]uint
	sessionGroups   map[uint][]uint
	attendeeGroups  map[uint][]uint

	groupCreates int
	listCalls    int
	failCreate   map[string]error
	failList     error
}

func newMemStore() *memStore {
	return &memStore{
		sessionSpeakers: map[uint][]uint{},
		sessionGroups:   map[uint][]uint{},
		attendeeGroups:  map[uint][]uint{},
		failCreate:      map[string]error{},
	}
}

func (m *memStore) stores() Stores {
	return Stores{Speakers: m, Sessions: m, Exhibitors: m, Sponsors: m, Groups: m, Attendees: m}
}

func (m *memStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *memStore) fail(key string) error {
	return m.failCreate[key]
}

func dup(what string) error {
	return fmt.Errorf("%w: UNIQUE constraint failed: %s", entities.ErrDuplicate, what)
}

func (m *memStore) CreateSpeaker(_ context.Context, s *entities.Speaker) error {
	if err := m.fail(s.FullName); err != nil {
		return err
	}
	for _, existing := range m.speakers {
		if s.Email != nil && existing.Email != nil && existing.EventID == s.EventID && *existing.Email == *s.Email {
			return dup("speakers.email")
		}
	}
	s.ID = m.id()
	m.speakers = append(m.speakers, *s)
	return nil
}

func (m *memStore) ListSpeakers(_ context.Context, eventID uint) ([]entities.Speaker, error) {
	m.listCalls++
	if m.failList != nil {
		return nil, m.failList
	}
	var out []entities.Speaker
	for _, s := range m.speakers {
		if s.EventID == eventID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStore) CreateSession(_ context.Context, s *entities.Session) error {
	if err := m.fail(s.Title); err != nil {
		return err
	}
	for _, existing := range m.sessions {
		if existing.EventID == s.EventID && existing.Title == s.Title && existing.Date == s.Date && existing.StartTime == s.StartTime {
			return dup("sessions.title")
		}
	}
	s.ID = m.id()
	m.sessions = append(m.sessions, *s)
	return nil
}

func (m *memStore) AddSessionSpeakers(_ context.Context, sessionID uint, ids []uint) error {
	if len(ids) > 0 {
		m.sessionSpeakers[sessionID] = append(m.sessionSpeakers[sessionID], ids...)
	}
	return nil
}

func (m *memStore) AddSessionGroups(_ context.Context, sessionID uint, ids []uint) error {
	if len(ids) > 0 {
		m.sessionGroups[sessionID] = append(m.sessionGroups[sessionID], ids...)
	}
	return nil
}

func (m *memStore) CreateExhibitor(_ context.Context, e *entities.Exhibitor) error {
	if err := m.fail(e.CompanyName); err != nil {
		return err
	}
	for _, existing := range m.exhibitors {
		if existing.EventID == e.EventID && existing.CompanyName == e.CompanyName {
			return dup("exhibitors.company_name")
		}
	}
	e.ID = m.id()
	m.exhibitors = append(m.exhibitors, *e)
	return nil
}

func (m *memStore) CreateSponsor(_ context.Context, s *entities.Sponsor) error {
	if err := m.fail(s.CompanyName); err != nil {
		return err
	}
	for _, existing := range m.sponsors {
		if existing.EventID == s.EventID && existing.CompanyName == s.CompanyName {
			return dup("sponsors.company_name")
		}
	}
	s.ID = m.id()
	m.sponsors = append(m.sponsors, *s)
	return nil
}

func (m *memStore) CreateGroup(_ context.Context, g *entities.Group) error {
	if err := m.fail(g.Name); err != nil {
		return err
	}
	for _, existing := range m.groups {
		if existing.EventID == g.EventID && existing.Name == g.Name {
			return dup("event_groups.name")
		}
	}
	g.ID = m.id()
	m.groups = append(m.groups, *g)
	return nil
}

func (m *memStore) GetOrCreateGroup(ctx context.Context, eventID uint, name string) (*entities.Group, error) {
	for _, existing := range m.groups {
		if existing.EventID == eventID && strings.EqualFold(existing.Name, name) {
			g := existing
			return &g, nil
		}
	}
	m.groupCreates++
	g := &entities.Group{EventID: eventID, Name: name}
	if err := m.CreateGroup(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (m *memStore) ListGroups(_ context.Context, eventID uint) ([]entities.Group, error) {
	m.listCalls++
	if m.failList != nil {
		return nil, m.failList
	}
	var out []entities.Group
	for _, g := range m.groups {
		if g.EventID == eventID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memStore) CreateAttendee(_ context.Context, a *entities.Attendee) error {
	if a.Email != nil {
		if err := m.fail(*a.Email); err != nil {
			return err
		}
		for _, existing := range m.attendees {
			if existing.EventID == a.EventID && existing.Email != nil && *existing.Email == *a.Email {
				return dup("attendees.email")
			}
		}
	}
	a.ID = m.id()
	m.attendees = append(m.attendees, *a)
	return nil
}

func (m *memStore) AddAttendeeGroups(_ context.Context, attendeeID uint, ids []uint) error {
	if len(ids) > 0 {
		m.attendeeGroups[attendeeID] = append(m.attendeeGroups[attendeeID], ids...)
	}
	return nil
}

func (m *memStore) seedSpeaker(eventID uint, name string) uint {
	s := entities.Speaker{ID: m.id(), EventID: eventID, FullName: name}
	m.speakers = append(m.speakers, s)
	return s.ID
}

func (m *memStore) seedGroup(eventID uint, name string) uint {
	g := entities.Group{ID: m.id(), EventID: eventID, Name: name}
	m.groups = append(m.groups, g)
	return g.ID
}

var errBackend = errors.New("connection reset by peer")
