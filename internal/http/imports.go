package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/eventadmin/internal/entities"
	"github.com/mrlokans/eventadmin/internal/importers"
	"github.com/mrlokans/eventadmin/internal/services"
)

// UploadField is the multipart field carrying the file.
const UploadField = "csv_file"

type ImportController struct {
	imports   ImportRunner
	sessions  ImportSessionReader
	maxErrors int
	log       *zap.Logger
}

func NewImportController(imports ImportRunner, sessions ImportSessionReader, maxErrors int, log *zap.Logger) *ImportController {
	return &ImportController{imports: imports, sessions: sessions, maxErrors: maxErrors, log: log}
}

type ImportResponse struct {
	SessionID   uint                  `json:"session_id"`
	RunID       string                `json:"run_id"`
	Status      entities.ImportStatus `json:"status"`
	Rows        int                   `json:"rows"`
	Created     int                   `json:"created"`
	Errors      []string              `json:"errors"`
	TotalErrors int                   `json:"total_errors"`
}

type ImportSessionResponse struct {
	*entities.ImportSession
	Errors []string `json:"errors"`
}

// Upload handles POST /api/events/:id/import/:kind
// With ?async=1 the file is queued and 202 is returned with the task id.
func (ic *ImportController) Upload(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	kind, ok := parseKindParam(c)
	if !ok {
		return
	}

	text, filename, ok := ic.readUpload(c)
	if !ok {
		return
	}

	req := services.ImportRequest{EventID: eventID, Kind: kind, FileName: filename, Content: text}
	ctx := c.Request.Context()

	if async, _ := strconv.ParseBool(c.Query("async")); async {
		session, err := ic.imports.Enqueue(ctx, req)
		if err != nil {
			ic.respondImportError(c, err)
			return
		}
		respondAccepted(c, "import queued", gin.H{
			"session_id": session.ID,
			"run_id":     session.RunID,
			"task_id":    session.TaskID,
		})
		return
	}

	session, result, err := ic.imports.Run(ctx, req)
	if err != nil {
		ic.respondImportError(c, err)
		return
	}

	c.JSON(http.StatusOK, ImportResponse{
		SessionID:   session.ID,
		RunID:       session.RunID,
		Status:      session.Status,
		Rows:        result.Rows,
		Created:     result.Created,
		Errors:      result.Summary(ic.maxErrors),
		TotalErrors: len(result.Errors),
	})
}

func (ic *ImportController) readUpload(c *gin.Context) (text, filename string, ok bool) {
	file, header, err := c.Request.FormFile(UploadField)
	if err != nil {
		if tooLarge(err) {
			respondError(c, http.StatusRequestEntityTooLarge, "file too large")
			return "", "", false
		}
		respondBadRequest(c, "No file provided")
		return "", "", false
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		if tooLarge(err) {
			respondError(c, http.StatusRequestEntityTooLarge, "file too large")
			return "", "", false
		}
		respondBadRequest(c, fmt.Sprintf("Failed to read file: %v", err))
		return "", "", false
	}

	text, err = importers.DecodeUpload(header.Filename, content)
	if err != nil {
		respondBadRequest(c, err.Error())
		return "", "", false
	}
	return text, header.Filename, true
}

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func (ic *ImportController) respondImportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnknownKind):
		respondBadRequest(c, err.Error())
	case errors.Is(err, services.ErrQueueUnavailable):
		respondError(c, http.StatusServiceUnavailable, err.Error())
	default:
		respondStoreError(c, ic.log, err, "event")
	}
}

// ListSessions handles GET /api/events/:id/imports
func (ic *ImportController) ListSessions(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	limit, _ := parsePage(c, 50, 200)

	sessions, err := ic.sessions.ListImportSessions(c.Request.Context(), eventID, limit)
	if err != nil {
		respondInternalError(c, ic.log, err, "list import sessions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// GetSession handles GET /api/imports/:session_id
func (ic *ImportController) GetSession(c *gin.Context) {
	id, ok := parseIDParam(c, "session_id")
	if !ok {
		return
	}

	session, err := ic.sessions.GetImportSession(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, ic.log, err, "import session")
		return
	}
	c.JSON(http.StatusOK, ImportSessionResponse{ImportSession: session, Errors: services.StoredErrors(session)})
}

// Template handles GET /api/import/templates/:kind
func (ic *ImportController) Template(c *gin.Context) {
	kind, ok := parseKindParam(c)
	if !ok {
		return
	}

	body, err := importers.Template(kind)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", importers.TemplateFilename(kind)))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
}
