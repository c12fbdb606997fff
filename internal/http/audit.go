package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/eventadmin/internal/entities"
)

type AuditController struct {
	audit AuditReader
	log   *zap.Logger
}

func NewAuditController(audit AuditReader, log *zap.Logger) *AuditController {
	return &AuditController{audit: audit, log: log}
}

// GetAuditEvents returns paginated audit events as JSON
// GET /api/audit?event_id=&type=&limit=&offset=
func (ac *AuditController) GetAuditEvents(c *gin.Context) {
	limit, offset := parsePage(c, 25, 100)

	var eventID uint
	if raw := c.Query("event_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondBadRequest(c, "invalid event_id")
			return
		}
		eventID = uint(id)
	}

	var (
		events []entities.AuditEvent
		total  int64
		err    error
	)
	if eventType := c.Query("type"); eventType != "" {
		events, total, err = ac.audit.GetEventsByType(c.Request.Context(), entities.AuditEventType(eventType), eventID, limit, offset)
	} else {
		events, total, err = ac.audit.GetEvents(c.Request.Context(), eventID, limit, offset)
	}
	if err != nil {
		respondInternalError(c, ac.log, err, "audit events")
		return
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:    events,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(events)) < total,
	})
}
