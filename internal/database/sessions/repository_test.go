package sessions

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/eventadmin/internal/entities"
)

func setupTestDB(t *testing.T) *Repository {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "sessions.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Session{},
		&entities.SessionSpeaker{},
		&entities.SessionGroup{},
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return NewRepository(db)
}

func newSession(title string) *entities.Session {
	return &entities.Session{
		EventID:   1,
		Title:     title,
		Date:      "2025-03-14",
		StartTime: "09:00",
		EndTime:   "10:00",
	}
}

func TestRepository_CreateSession_Duplicate(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateSession(ctx, newSession("Keynote")))
	err := repo.CreateSession(ctx, newSession("Keynote"))

	assert.ErrorIs(t, err, entities.ErrDuplicate)
}

func TestRepository_CreateSession_SameTitleDifferentSlot(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateSession(ctx, newSession("Workshop")))
	later := newSession("Workshop")
	later.StartTime = "14:00"
	later.EndTime = "15:00"

	assert.NoError(t, repo.CreateSession(ctx, later))
}

func TestRepository_AddSessionSpeakers_KeepsOrder(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	session := newSession("Panel")
	require.NoError(t, repo.CreateSession(ctx, session))

	require.NoError(t, repo.AddSessionSpeakers(ctx, session.ID, []uint{30, 10, 20}))
	require.NoError(t, repo.AddSessionSpeakers(ctx, session.ID, []uint{40}))

	sessions, err := repo.ListSessions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	var order []uint
	for _, s := range sessions[0].Speakers {
		order = append(order, s.SpeakerID)
	}
	assert.Equal(t, []uint{30, 10, 20, 40}, order)
	assert.Equal(t, 3, sessions[0].Speakers[3].Position)
}

func TestRepository_AddSessionGroups_IgnoresRepeats(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	session := newSession("Breakfast")
	require.NoError(t, repo.CreateSession(ctx, session))

	require.NoError(t, repo.AddSessionGroups(ctx, session.ID, []uint{1, 2}))
	require.NoError(t, repo.AddSessionGroups(ctx, session.ID, []uint{2}))

	sessions, err := repo.ListSessions(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, sessions[0].Groups, 2)
}

func TestRepository_AddSessionSpeakers_Empty(t *testing.T) {
	repo := setupTestDB(t)

	assert.NoError(t, repo.AddSessionSpeakers(context.Background(), 1, nil))
}
