package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/eventadmin/internal/audit"
	"github.com/mrlokans/eventadmin/internal/database/attendees"
	"github.com/mrlokans/eventadmin/internal/database/events"
	"github.com/mrlokans/eventadmin/internal/database/exhibitors"
	"github.com/mrlokans/eventadmin/internal/database/groups"
	"github.com/mrlokans/eventadmin/internal/database/imports"
	"github.com/mrlokans/eventadmin/internal/database/sessions"
	"github.com/mrlokans/eventadmin/internal/database/speakers"
	"github.com/mrlokans/eventadmin/internal/database/sponsors"
	"github.com/mrlokans/eventadmin/internal/http"
	"github.com/mrlokans/eventadmin/internal/importers"
	"github.com/mrlokans/eventadmin/internal/scheduler"
	"github.com/mrlokans/eventadmin/internal/services"
	"github.com/mrlokans/eventadmin/internal/tasks"
)

// =============================================================================
// Import Pipeline Stores
// =============================================================================

var _ importers.SpeakerStore = (*speakers.Repository)(nil)
var _ importers.SessionStore = (*sessions.Repository)(nil)
var _ importers.ExhibitorStore = (*exhibitors.Repository)(nil)
var _ importers.SponsorStore = (*sponsors.Repository)(nil)
var _ importers.GroupStore = (*groups.Repository)(nil)
var _ importers.AttendeeStore = (*attendees.Repository)(nil)

// =============================================================================
// Import Runner
// =============================================================================

var _ services.EventGetter = (*events.Repository)(nil)
var _ services.ImportSessionStore = (*imports.Repository)(nil)
var _ services.RowImporter = (*importers.Importer)(nil)
var _ services.ImportAuditor = (*audit.Service)(nil)
var _ services.ReportArchiver = (*audit.Archiver)(nil)
var _ services.TaskQueue = (*tasks.Client)(nil)

// =============================================================================
// HTTP Layer
// =============================================================================

var _ http.EventStore = (*events.Repository)(nil)
var _ http.ImportRunner = (*services.ImportService)(nil)
var _ http.ImportSessionReader = (*imports.Repository)(nil)
var _ http.EntityLister = (*services.Catalog)(nil)
var _ http.AuditReader = (*audit.Service)(nil)
var _ http.AuditRecorder = (*audit.Service)(nil)
var _ http.TaskStatusReader = (*tasks.Client)(nil)

// =============================================================================
// Background Tasks
// =============================================================================

var _ tasks.ImportRunner = (*services.ImportService)(nil)
var _ tasks.AuditEventCleaner = (*audit.Service)(nil)
var _ tasks.CleanupRecorder = (*audit.Service)(nil)
var _ tasks.ImportSessionCleaner = (*imports.Repository)(nil)
var _ scheduler.TaskQueue = (*tasks.Client)(nil)
