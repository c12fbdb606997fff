package services

import (
	"context"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/eventadmin/internal/entities"
	"github.com/mrlokans/eventadmin/internal/importers"
)

// EventGetter looks up the event an import targets.
type EventGetter interface {
	GetEventByID(ctx context.Context, id uint) (*entities.Event, error)
}

// ImportSessionStore persists the history of import runs.
type ImportSessionStore interface {
	CreateImportSession(ctx context.Context, session *entities.ImportSession) error
	UpdateImportSession(ctx context.Context, session *entities.ImportSession) error
	GetImportSession(ctx context.Context, id uint) (*entities.ImportSession, error)
	SetImportTaskID(ctx context.Context, id uint, taskID string) error
}

// RowImporter runs the bulk import pipeline.
type RowImporter interface {
	Import(ctx context.Context, eventID uint, kind entities.ImportKind, text string) importers.Result
}

// ImportAuditor records finished runs in the audit log.
type ImportAuditor interface {
	LogImport(ctx context.Context, session *entities.ImportSession, err error)
}

// ReportArchiver keeps the full error report of a run.
type ReportArchiver interface {
	SaveJSON(name string, data any) (string, error)
}

// TaskQueue enqueues background tasks.
type TaskQueue interface {
	Enqueue(task backlite.Task) (string, error)
}
