package importers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/eventadmin/internal/entities"
)

const eventID = uint(1)

func runImport(t *testing.T, store *memStore, kind entities.ImportKind, csv string) Result {
	t.Helper()
	return NewImporter(store.stores(), nil).Import(context.Background(), eventID, kind, csv)
}

func TestImport_AllValidRows(t *testing.T) {
	store := newMemStore()

	result := runImport(t, store, entities.ImportKindSpeakers, strings.Join([]string{
		"full_name,email,institution",
		"Jane Doe,jane@x.com,Mayo Clinic",
		"John Roe,john@x.com,",
		`"Smith, Ann",ann@x.com,"Johns Hopkins"`,
	}, "\n"))

	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 3, result.Rows)
	assert.Empty(t, result.Errors)
	require.Len(t, store.speakers, 3)
	assert.Equal(t, "Smith, Ann", store.speakers[2].FullName)
	assert.Nil(t, store.speakers[1].Institution)
}

func TestImport_NoDataRows(t *testing.T) {
	for _, csv := range []string{"", "full_name,email", "\n\n"} {
		store := newMemStore()

		result := runImport(t, store, entities.ImportKindSpeakers, csv)

		assert.Equal(t, 0, result.Created)
		assert.Equal(t, []string{"No valid rows found in CSV"}, result.Errors)
	}
}

func TestImport_UnsupportedKind(t *testing.T) {
	result := runImport(t, newMemStore(), entities.ImportKind("badges"), "name\nx")

	assert.Equal(t, []string{`Unsupported import kind "badges"`}, result.Errors)
}

func TestImport_NotConfiguredKind(t *testing.T) {
	store := newMemStore()
	stores := store.stores()
	stores.Sponsors = nil

	result := NewImporter(stores, nil).Import(context.Background(), eventID, entities.ImportKindSponsors, "company_name\nAcme")

	assert.Equal(t, []string{"Import of sponsors is not configured"}, result.Errors)
}

func TestImport_DuplicateSpeaker(t *testing.T) {
	store := newMemStore()

	result := runImport(t, store, entities.ImportKindSpeakers,
		"full_name,email\nJane Doe,jane@x.com\nJane Doe,jane@x.com\n")

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, []string{`Skipped "Jane Doe": duplicate email`}, result.Errors)
}

func TestImport_MissingRequiredFieldContinues(t *testing.T) {
	store := newMemStore()

	result := runImport(t, store, entities.ImportKindSpeakers,
		"full_name,email\n,nobody@x.com\nJane Doe,jane@x.com\n,\n")

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, []string{
		`Row 2 ("nobody@x.com"): missing required field(s): full_name`,
		`Row 4: missing required field(s): full_name`,
	}, result.Errors)
}

func TestImport_BackendErrorContinues(t *testing.T) {
	store := newMemStore()
	store.failCreate["Acme"] = errBackend

	result := runImport(t, store, entities.ImportKindExhibitors,
		"company_name,booth_number\nAcme,A1\nGlobex,B2\n")

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, []string{`Failed to import "Acme": connection reset by peer`}, result.Errors)
	assert.Equal(t, "Globex", store.exhibitors[0].CompanyName)
}

func TestImport_ExternalDialectSpeakers(t *testing.T) {
	store := newMemStore()

	result := runImport(t, store, entities.ImportKindSpeakers, strings.Join([]string{
		"Speaker First Name,Speaker Last Name,Speaker Email,Speaker Organization",
		"Jane,Doe,jane@x.com,Mayo",
	}, "\n"))

	require.Equal(t, 1, result.Created)
	speaker := store.speakers[0]
	assert.Equal(t, "Jane Doe", speaker.FullName)
	assert.Equal(t, "jane@x.com", *speaker.Email)
	assert.Equal(t, "Mayo", *speaker.Institution)
}

func TestImport_SessionPartialSpeakerFailure(t *testing.T) {
	store := newMemStore()
	alice := store.seedSpeaker(eventID, "Alice Smith")
	bob := store.seedSpeaker(eventID, "Bob Jones")

	result := runImport(t, store, entities.ImportKindSessions, strings.Join([]string{
		"title,date,start_time,end_time,speakers",
		`Keynote,2025-03-14,09:00,10:00,"Bob Jones; Ghost Person; alice smith"`,
	}, "\n"))

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, []string{`Session "Keynote": speaker "Ghost Person" not found`}, result.Errors)
	require.Len(t, store.sessions, 1)
	assert.Equal(t, []uint{bob, alice}, store.sessionSpeakers[store.sessions[0].ID])
}

func TestImport_SessionCountsAsCreatedWhenEveryReferenceFails(t *testing.T) {
	store := newMemStore()

	result := runImport(t, store, entities.ImportKindSessions,
		"title,date,start_time,end_time,speakers\nPanel,2025-03-14,11:00,12:00,Nobody|Noone\n")

	assert.Equal(t, 1, result.Created)
	assert.Len(t, result.Errors, 2)
	assert.Empty(t, store.sessionSpeakers)
}

func TestImport_GroupAutoCreatedOncePerFile(t *testing.T) {
	store := newMemStore()

	result := runImport(t, store, entities.ImportKindSessions, strings.Join([]string{
		"title,date,start_time,end_time,groups",
		"Breakfast,2025-03-14,08:00,09:00,VIP",
		"Lunch,2025-03-14,12:00,13:00,vip",
		"Dinner,2025-03-14,19:00,21:00,VIP;Press",
	}, "\n"))

	assert.Equal(t, 3, result.Created)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 2, store.groupCreates)
	require.Len(t, store.groups, 2)

	vip := store.groups[0].ID
	for _, session := range store.sessions {
		assert.Equal(t, vip, store.sessionGroups[session.ID][0], session.Title)
	}
}

func TestImport_ExistingGroupIsReused(t *testing.T) {
	store := newMemStore()
	vip := store.seedGroup(eventID, "VIP")

	result := runImport(t, store, entities.ImportKindAttendees,
		"email,groups\na@x.com,vip\nb@x.com,VIP\n")

	assert.Equal(t, 2, result.Created)
	assert.Zero(t, store.groupCreates)
	assert.Equal(t, []uint{vip}, store.attendeeGroups[store.attendees[0].ID])
}

func TestImport_PrefetchOncePerCall(t *testing.T) {
	store := newMemStore()

	runImport(t, store, entities.ImportKindSessions, strings.Join([]string{
		"title,date,start_time,end_time,speakers,groups",
		"A,2025-03-14,08:00,09:00,X,G",
		"B,2025-03-14,09:00,10:00,Y,H",
		"C,2025-03-14,10:00,11:00,Z,I",
	}, "\n"))

	assert.Equal(t, 2, store.listCalls)
}

func TestImport_PrefetchFailureIsReported(t *testing.T) {
	store := newMemStore()
	store.failList = errBackend

	result := runImport(t, store, entities.ImportKindSessions,
		"title,date,start_time,end_time\nA,2025-03-14,08:00,09:00\n")

	assert.Zero(t, result.Created)
	assert.Equal(t, []string{"Failed to load existing speakers: connection reset by peer"}, result.Errors)
}

func TestImport_SessionMissingFields(t *testing.T) {
	store := newMemStore()

	result := runImport(t, store, entities.ImportKindSessions,
		"title,date,start_time,end_time\nWorkshop,2025-03-14,,\n,2025-03-14,10:00,11:00\n")

	assert.Zero(t, result.Created)
	assert.Equal(t, []string{
		`Row 2 ("Workshop"): missing required field(s): start_time, end_time`,
		`Row 3: missing required field(s): title`,
	}, result.Errors)
}

func TestImport_DuplicateSessionSkipsReferenceErrors(t *testing.T) {
	store := newMemStore()

	result := runImport(t, store, entities.ImportKindSessions, strings.Join([]string{
		"title,date,start_time,end_time,speakers",
		"Keynote,2025-03-14,09:00,10:00,",
		"Keynote,2025-03-14,09:00,10:00,Ghost",
	}, "\n"))

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, []string{`Skipped "Keynote": duplicate title, date and start time`}, result.Errors)
}

func TestImport_GroupCreateFailure(t *testing.T) {
	store := newMemStore()
	store.failCreate["Broken"] = errBackend

	result := runImport(t, store, entities.ImportKindAttendees,
		"full_name,email,groups\nJane Doe,jane@x.com,\"VIP, Broken\"\n")

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, []string{`Attendee "Jane Doe": could not create group "Broken": connection reset by peer`}, result.Errors)
	assert.Len(t, store.attendeeGroups[store.attendees[0].ID], 1)
}

func TestImport_Attendees(t *testing.T) {
	store := newMemStore()

	result := runImport(t, store, entities.ImportKindAttendees, strings.Join([]string{
		"first_name,last_name,email,company",
		"Jane,Doe,jane@x.com,Acme",
		",,,Nobody Inc",
		",,anon@x.com,",
		"Dup,Person,jane@x.com,",
	}, "\n"))

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, []string{
		"Row 3: missing required field(s): email or full_name",
		`Skipped "Dup Person": duplicate email`,
	}, result.Errors)
	assert.Equal(t, "Jane Doe", *store.attendees[0].FullName)
	assert.Nil(t, store.attendees[1].FullName)
}

func TestImport_SponsorsAndGroups(t *testing.T) {
	store := newMemStore()

	sponsors := runImport(t, store, entities.ImportKindSponsors,
		"Company,Sponsorship Level,Contact First Name,Contact Last Name\nAcme,Gold,Wile,Coyote\nAcme,Silver,,\n")
	groups := runImport(t, store, entities.ImportKindGroups,
		"group_name,color\nVIP,#ff0000\n,#000\nVIP,\n")

	assert.Equal(t, 1, sponsors.Created)
	assert.Equal(t, []string{`Skipped "Acme": duplicate company name`}, sponsors.Errors)
	assert.Equal(t, "Wile Coyote", *store.sponsors[0].ContactName)
	assert.Equal(t, "Gold", *store.sponsors[0].Tier)

	assert.Equal(t, 1, groups.Created)
	assert.Equal(t, []string{
		"Row 3: missing required field(s): name",
		`Skipped "VIP": duplicate name`,
	}, groups.Errors)
}

func TestImport_CallsDoNotShareCreatedIndex(t *testing.T) {
	store := newMemStore()
	csv := "title,date,start_time,end_time,groups\nA,2025-03-14,08:00,09:00,VIP\n"

	runImport(t, store, entities.ImportKindSessions, csv)
	other := NewImporter(store.stores(), nil).Import(context.Background(), 2, entities.ImportKindSessions, csv)

	assert.Equal(t, 1, other.Created)
	assert.Equal(t, 2, store.groupCreates)
	assert.NotEqual(t, store.groups[0].ID, store.groups[1].ID)
}
