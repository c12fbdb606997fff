package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/eventadmin/internal/entities"
)

// Models lists every table managed by AutoMigrate.
var Models = []any{
	&entities.Event{},
	&entities.Speaker{},
	&entities.Session{},
	&entities.SessionSpeaker{},
	&entities.SessionGroup{},
	&entities.Exhibitor{},
	&entities.Sponsor{},
	&entities.Group{},
	&entities.Attendee{},
	&entities.AttendeeGroup{},
	&entities.ImportSession{},
	&entities.AuditEvent{},
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string, log *zap.Logger) (*Database, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := Open(dbPath, logger.Warn)
	if err != nil {
		return nil, err
	}

	log.Info("database initialized", zap.String("path", dbPath))

	return &Database{DB: db}, nil
}

// Open connects to sqlite at dbPath and migrates the schema. Busy timeout
// is raised so HTTP handlers and task workers can share one file.
func Open(dbPath string, level logger.LogLevel) (*gorm.DB, error) {
	dsn := dbPath + "?_busy_timeout=5000&_journal_mode=WAL"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.New(zap.NewStdLog(zap.L()), logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(Models...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
