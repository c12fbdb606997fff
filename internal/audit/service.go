package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mrlokans/eventadmin/internal/database/audit"
	"github.com/mrlokans/eventadmin/internal/entities"
)

// Service provides high-level audit logging functionality.
type Service struct {
	repo    *audit.Repository
	log     *zap.Logger
	pending sync.WaitGroup
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log}
}

// Log records a generic audit event.
func (s *Service) Log(ctx context.Context, event *entities.AuditEvent) error {
	return s.repo.LogEvent(ctx, event)
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.repo.LogEvent(context.Background(), event); err != nil {
			s.log.Warn("failed to log audit event", zap.String("action", event.Action), zap.Error(err))
		}
	}()
}

// Wait blocks until every LogAsync call has been written.
func (s *Service) Wait() {
	s.pending.Wait()
}

// LogImport records the outcome of an import run. Runs that created rows
// but also reported errors are logged as partial.
func (s *Service) LogImport(ctx context.Context, session *entities.ImportSession, err error) {
	event := &entities.AuditEvent{
		EventID:     session.EventID,
		EventType:   entities.AuditEventImport,
		Action:      string(session.Kind) + "_import",
		Description: fmt.Sprintf("Imported %d of %d %s from %s", session.Created, session.RowCount, session.Kind, session.FileName),
		EntityType:  "import_session",
		EntityID:    &session.ID,
		Status:      importStatus(session, err),
	}

	metadata := map[string]any{
		"run_id":      session.RunID,
		"rows":        session.RowCount,
		"created":     session.Created,
		"error_count": session.ErrorCount,
	}
	if mdBytes, e := json.Marshal(metadata); e == nil {
		event.Metadata = string(mdBytes)
	}

	if err != nil {
		event.ErrorMsg = truncate(err.Error(), 500)
	}

	if e := s.repo.LogEvent(ctx, event); e != nil {
		s.log.Warn("failed to log import audit event", zap.String("run_id", session.RunID), zap.Error(e))
	}
}

func importStatus(session *entities.ImportSession, err error) entities.AuditStatus {
	switch {
	case err != nil || (session.Created == 0 && session.ErrorCount > 0):
		return entities.AuditStatusFailed
	case session.ErrorCount > 0:
		return entities.AuditStatusPartial
	default:
		return entities.AuditStatusSuccess
	}
}

// LogCreate records a manually created record such as an event.
func (s *Service) LogCreate(eventID uint, entityType string, entityID uint, name, ipAddr, userAgent string) {
	s.LogAsync(&entities.AuditEvent{
		EventID:     eventID,
		EventType:   entities.AuditEventCreate,
		Action:      entityType + "_create",
		Description: "Created " + entityType + ": " + name,
		EntityType:  entityType,
		EntityID:    &entityID,
		IPAddress:   ipAddr,
		UserAgent:   truncate(userAgent, 500),
		Status:      entities.AuditStatusSuccess,
	})
}

// LogCleanup records a retention cleanup run.
func (s *Service) LogCleanup(ctx context.Context, action string, deleted int64, err error) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventCleanup,
		Action:      action,
		Description: fmt.Sprintf("Deleted %d records", deleted),
		Status:      entities.AuditStatusSuccess,
	}
	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}
	if e := s.repo.LogEvent(ctx, event); e != nil {
		s.log.Warn("failed to log cleanup audit event", zap.String("action", action), zap.Error(e))
	}
}

// GetEvents retrieves paginated audit events.
func (s *Service) GetEvents(ctx context.Context, eventID uint, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(ctx, eventID, limit, offset)
}

// GetEventsByType retrieves audit events filtered by type.
func (s *Service) GetEventsByType(ctx context.Context, eventType entities.AuditEventType, eventID uint, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEventsByType(ctx, eventType, eventID, limit, offset)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(ctx, cutoff)
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
