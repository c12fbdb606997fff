package http

import (
	"go.uber.org/zap"

	"github.com/mrlokans/eventadmin/internal/audit"
	"github.com/mrlokans/eventadmin/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database       *database.Database
	Events         EventStore
	Imports        ImportRunner
	ImportSessions ImportSessionReader
	Catalog        EntityLister
	Audit          *audit.Service

	// Task queue client (optional); async uploads are rejected without it
	Tasks TaskStatusReader

	// Upload limits
	MaxUploadBytes int64
	MaxErrorsShown int

	// Application info
	Version string

	Logger *zap.Logger
}
