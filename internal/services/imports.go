package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mrlokans/eventadmin/internal/entities"
	"github.com/mrlokans/eventadmin/internal/importers"
	"github.com/mrlokans/eventadmin/internal/tasks"
)

var (
	ErrUnknownKind      = errors.New("unknown import kind")
	ErrQueueUnavailable = errors.New("background imports are disabled")
)

// ImportRequest describes one uploaded file.
type ImportRequest struct {
	EventID  uint
	Kind     entities.ImportKind
	FileName string
	Content  string
}

// ImportServiceConfig wires an ImportService. Archive and Queue are optional.
type ImportServiceConfig struct {
	Events   EventGetter
	Sessions ImportSessionStore
	Importer RowImporter
	Audit    ImportAuditor
	Archive  ReportArchiver
	Queue    TaskQueue

	// MaxStoredErrors caps the errors kept on the session row. Default: 100
	MaxStoredErrors int
	Logger          *zap.Logger
}

// ImportService runs imports synchronously or through the task queue and
// records every run as an ImportSession.
type ImportService struct {
	cfg ImportServiceConfig
	log *zap.Logger
}

func NewImportService(cfg ImportServiceConfig) *ImportService {
	if cfg.MaxStoredErrors <= 0 {
		cfg.MaxStoredErrors = 100
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &ImportService{cfg: cfg, log: log}
}

// Run imports req immediately and returns the finished session.
func (s *ImportService) Run(ctx context.Context, req ImportRequest) (*entities.ImportSession, importers.Result, error) {
	session, err := s.open(ctx, req, entities.ImportStatusRunning)
	if err != nil {
		return nil, importers.Result{}, err
	}

	result, err := s.execute(ctx, session, req.Content)
	return session, result, err
}

// Enqueue records a queued session and hands the file to a background
// worker. The returned session carries the task id.
func (s *ImportService) Enqueue(ctx context.Context, req ImportRequest) (*entities.ImportSession, error) {
	if s.cfg.Queue == nil {
		return nil, ErrQueueUnavailable
	}

	session, err := s.open(ctx, req, entities.ImportStatusQueued)
	if err != nil {
		return nil, err
	}

	taskID, err := s.cfg.Queue.Enqueue(tasks.ImportTask{SessionID: session.ID, Content: req.Content})
	if err != nil {
		s.fail(ctx, session, err)
		return nil, fmt.Errorf("failed to enqueue import: %w", err)
	}

	session.TaskID = taskID
	if err := s.cfg.Sessions.SetImportTaskID(ctx, session.ID, taskID); err != nil {
		return nil, fmt.Errorf("failed to update import session: %w", err)
	}

	s.log.Info("import queued",
		zap.String("run_id", session.RunID),
		zap.String("task_id", taskID),
		zap.String("kind", string(session.Kind)),
	)
	return session, nil
}

// RunQueued executes a session created by Enqueue.
func (s *ImportService) RunQueued(ctx context.Context, sessionID uint, content string) error {
	session, err := s.cfg.Sessions.GetImportSession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to load import session: %w", err)
	}
	if session.Status != entities.ImportStatusQueued {
		return fmt.Errorf("import session %d is %s, not queued", sessionID, session.Status)
	}

	session.Status = entities.ImportStatusRunning
	session.StartedAt = time.Now()
	if err := s.cfg.Sessions.UpdateImportSession(ctx, session); err != nil {
		return fmt.Errorf("failed to update import session: %w", err)
	}

	_, err = s.execute(ctx, session, content)
	return err
}

func (s *ImportService) open(ctx context.Context, req ImportRequest, status entities.ImportStatus) (*entities.ImportSession, error) {
	if _, ok := entities.ParseImportKind(string(req.Kind)); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}
	if _, err := s.cfg.Events.GetEventByID(ctx, req.EventID); err != nil {
		return nil, fmt.Errorf("event %d: %w", req.EventID, err)
	}

	session := &entities.ImportSession{
		RunID:     uuid.NewString(),
		EventID:   req.EventID,
		Kind:      req.Kind,
		FileName:  req.FileName,
		Status:    status,
		StartedAt: time.Now(),
	}
	if err := s.cfg.Sessions.CreateImportSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create import session: %w", err)
	}
	return session, nil
}

func (s *ImportService) execute(ctx context.Context, session *entities.ImportSession, content string) (importers.Result, error) {
	result := s.cfg.Importer.Import(ctx, session.EventID, session.Kind, content)

	now := time.Now()
	session.RowCount = result.Rows
	session.Created = result.Created
	session.ErrorCount = len(result.Errors)
	session.Errors = encodeErrors(result.Errors, s.cfg.MaxStoredErrors)
	session.CompletedAt = &now
	session.Status = entities.ImportStatusCompleted
	if result.Created == 0 && result.HasErrors() {
		session.Status = entities.ImportStatusFailed
	}

	if err := s.cfg.Sessions.UpdateImportSession(ctx, session); err != nil {
		return result, fmt.Errorf("failed to update import session: %w", err)
	}

	if s.cfg.Archive != nil && result.HasErrors() {
		report := map[string]any{"session": session, "errors": result.Errors}
		if _, err := s.cfg.Archive.SaveJSON(session.RunID, report); err != nil {
			s.log.Warn("failed to archive import report", zap.String("run_id", session.RunID), zap.Error(err))
		}
	}

	if s.cfg.Audit != nil {
		s.cfg.Audit.LogImport(ctx, session, nil)
	}

	s.log.Info("import session finished",
		zap.String("run_id", session.RunID),
		zap.Uint("event_id", session.EventID),
		zap.String("kind", string(session.Kind)),
		zap.String("status", string(session.Status)),
		zap.Int("created", session.Created),
		zap.Int("errors", session.ErrorCount),
		zap.Duration("took", now.Sub(session.StartedAt)),
	)
	return result, nil
}

func (s *ImportService) fail(ctx context.Context, session *entities.ImportSession, cause error) {
	now := time.Now()
	session.Status = entities.ImportStatusFailed
	session.CompletedAt = &now
	session.Errors = encodeErrors([]string{cause.Error()}, 1)
	session.ErrorCount = 1
	if err := s.cfg.Sessions.UpdateImportSession(ctx, session); err != nil {
		s.log.Warn("failed to mark import session failed", zap.String("run_id", session.RunID), zap.Error(err))
	}
	if s.cfg.Audit != nil {
		s.cfg.Audit.LogImport(ctx, session, cause)
	}
}

func encodeErrors(errs []string, max int) string {
	if len(errs) > max {
		errs = errs[:max]
	}
	data, err := json.Marshal(errs)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// StoredErrors decodes the errors kept on a session.
func StoredErrors(session *entities.ImportSession) []string {
	errs := []string{}
	if session.Errors == "" {
		return errs
	}
	_ = json.Unmarshal([]byte(session.Errors), &errs)
	return errs
}
