package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/eventadmin/internal/config"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = config.DefaultMaxUploadBytes
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))
	router.Use(SecurityHeadersMiddleware())

	// Health endpoints
	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := router.Group("/api")

	var auditRecorder AuditRecorder
	if cfg.Audit != nil {
		auditRecorder = cfg.Audit
		auditController := NewAuditController(cfg.Audit, log)
		api.GET("/audit", auditController.GetAuditEvents)
	}

	events := NewEventsController(cfg.Events, cfg.Catalog, auditRecorder, log)
	api.POST("/events", events.Create)
	api.GET("/events", events.List)
	api.GET("/events/:id", events.Get)
	api.GET("/events/:id/:kind", events.ListEntities)

	imports := NewImportController(cfg.Imports, cfg.ImportSessions, cfg.MaxErrorsShown, log)
	api.POST("/events/:id/import/:kind", MaxBodySize(maxUpload), imports.Upload)
	api.GET("/events/:id/imports", imports.ListSessions)
	api.GET("/imports/:session_id", imports.GetSession)
	api.GET("/import/templates/:kind", imports.Template)

	tasks := NewTasksController(cfg.Tasks, log)
	api.GET("/tasks/:id", tasks.GetTaskStatus)

	return router
}
