package http

import (
	"context"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/eventadmin/internal/entities"
	"github.com/mrlokans/eventadmin/internal/importers"
	"github.com/mrlokans/eventadmin/internal/services"
)

// Each controller depends on the narrow interface it needs.

type EventStore interface {
	CreateEvent(ctx context.Context, event *entities.Event) error
	GetEventByID(ctx context.Context, id uint) (*entities.Event, error)
	ListEvents(ctx context.Context) ([]entities.Event, error)
}

type ImportRunner interface {
	Run(ctx context.Context, req services.ImportRequest) (*entities.ImportSession, importers.Result, error)
	Enqueue(ctx context.Context, req services.ImportRequest) (*entities.ImportSession, error)
}

type ImportSessionReader interface {
	GetImportSession(ctx context.Context, id uint) (*entities.ImportSession, error)
	ListImportSessions(ctx context.Context, eventID uint, limit int) ([]entities.ImportSession, error)
}

type EntityLister interface {
	List(ctx context.Context, eventID uint, kind entities.ImportKind) (any, error)
	SpeakerCount(ctx context.Context, eventID uint) (int64, error)
}

type AuditReader interface {
	GetEvents(ctx context.Context, eventID uint, limit, offset int) ([]entities.AuditEvent, int64, error)
	GetEventsByType(ctx context.Context, eventType entities.AuditEventType, eventID uint, limit, offset int) ([]entities.AuditEvent, int64, error)
}

type AuditRecorder interface {
	LogCreate(eventID uint, entityType string, entityID uint, name, ipAddr, userAgent string)
}

type TaskStatusReader interface {
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
}
