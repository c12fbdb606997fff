package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/eventadmin/internal/entities"
)

type EventsController struct {
	events  EventStore
	catalog EntityLister
	audit   AuditRecorder
	log     *zap.Logger
}

func NewEventsController(events EventStore, catalog EntityLister, audit AuditRecorder, log *zap.Logger) *EventsController {
	return &EventsController{events: events, catalog: catalog, audit: audit, log: log}
}

type CreateEventRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Venue     string `json:"venue"`
}

type EventResponse struct {
	entities.Event
	SpeakerCount int64 `json:"speaker_count"`
}

// Create handles POST /api/events
func (ec *EventsController) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name is required")
		return
	}

	event := &entities.Event{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Venue:     req.Venue,
	}
	if err := ec.events.CreateEvent(c.Request.Context(), event); err != nil {
		respondStoreError(c, ec.log, err, "event")
		return
	}

	if ec.audit != nil {
		ec.audit.LogCreate(event.ID, "event", event.ID, event.Name, c.ClientIP(), c.Request.UserAgent())
	}
	respondCreated(c, event)
}

// List handles GET /api/events
func (ec *EventsController) List(c *gin.Context) {
	events, err := ec.events.ListEvents(c.Request.Context())
	if err != nil {
		respondInternalError(c, ec.log, err, "list events")
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// Get handles GET /api/events/:id
func (ec *EventsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	event, err := ec.events.GetEventByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, ec.log, err, "event")
		return
	}

	resp := EventResponse{Event: *event}
	if ec.catalog != nil {
		if resp.SpeakerCount, err = ec.catalog.SpeakerCount(c.Request.Context(), id); err != nil {
			respondInternalError(c, ec.log, err, "count speakers")
			return
		}
	}
	c.JSON(http.StatusOK, resp)
}

// ListEntities handles GET /api/events/:id/:kind
func (ec *EventsController) ListEntities(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	kind, ok := parseKindParam(c)
	if !ok {
		return
	}

	if _, err := ec.events.GetEventByID(c.Request.Context(), id); err != nil {
		respondStoreError(c, ec.log, err, "event")
		return
	}

	items, err := ec.catalog.List(c.Request.Context(), id, kind)
	if err != nil {
		respondInternalError(c, ec.log, err, "list "+string(kind))
		return
	}
	c.JSON(http.StatusOK, gin.H{"kind": kind, "items": items})
}
