package importers

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/eventadmin/internal/entities"
)

// assertAllPresent fails for every nil pointer or empty slice field of row.
func assertAllPresent(t *testing.T, row any) {
	t.Helper()
	v := reflect.ValueOf(row)
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		name := v.Type().Field(i).Name
		switch f.Kind() {
		case reflect.Pointer:
			assert.False(t, f.IsNil(), "%s is absent", name)
		case reflect.Slice:
			assert.NotZero(t, f.Len(), "%s is empty", name)
		}
	}
}

func TestTemplate_RoundTrip(t *testing.T) {
	normalizers := map[entities.ImportKind]func(RawRow) any{
		entities.ImportKindSpeakers:   func(r RawRow) any { return NormalizeSpeaker(r) },
		entities.ImportKindSessions:   func(r RawRow) any { return NormalizeSession(r) },
		entities.ImportKindExhibitors: func(r RawRow) any { return NormalizeExhibitor(r) },
		entities.ImportKindSponsors:   func(r RawRow) any { return NormalizeSponsor(r) },
		entities.ImportKindGroups:     func(r RawRow) any { return NormalizeGroup(r) },
		entities.ImportKindAttendees:  func(r RawRow) any { return NormalizeAttendee(r) },
	}

	for _, kind := range entities.ImportKinds {
		t.Run(string(kind), func(t *testing.T) {
			text, err := Template(kind)
			require.NoError(t, err)

			rows := Tokenize(text)
			require.NotEmpty(t, rows)
			assert.LessOrEqual(t, len(rows), 3)

			normalize, ok := normalizers[kind]
			require.True(t, ok)
			for _, raw := range rows {
				assertAllPresent(t, normalize(raw))
			}
		})
	}
}

func TestTemplate_ImportsCleanly(t *testing.T) {
	store := newMemStore()
	importer := NewImporter(store.stores(), nil)

	for _, kind := range []entities.ImportKind{entities.ImportKindSpeakers, entities.ImportKindGroups, entities.ImportKindSessions} {
		text, err := Template(kind)
		require.NoError(t, err)

		result := importer.Import(t.Context(), eventID, kind, text)
		assert.Empty(t, result.Errors, kind)
		assert.Equal(t, result.Rows, result.Created, kind)
	}
}

func TestTemplate_UnknownKind(t *testing.T) {
	_, err := Template("badges")
	assert.Error(t, err)
}

func TestTemplateFilename(t *testing.T) {
	assert.Equal(t, "speakers_import_template.csv", TemplateFilename(entities.ImportKindSpeakers))
}
