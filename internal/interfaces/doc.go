// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Import Pipeline Stores (internal/importers/store.go)
//
//   - SpeakerStore, SessionStore, ExhibitorStore, SponsorStore, GroupStore,
//     AttendeeStore: one per import kind, bundled in importers.Stores.
//     Create methods must wrap entities.ErrDuplicate on a uniqueness violation.
//
// ## Import Runner (internal/services/interfaces.go)
//
//   - EventGetter, ImportSessionStore, RowImporter, ImportAuditor,
//     ReportArchiver, TaskQueue
//
// ## HTTP Layer (internal/http/stores.go)
//
//   - EventStore, ImportRunner, ImportSessionReader, EntityLister,
//     AuditReader, AuditRecorder, TaskStatusReader
//
// ## Background Tasks (internal/tasks)
//
//   - ImportRunner: executes a queued import session
//   - AuditEventCleaner, ImportSessionCleaner, CleanupRecorder: retention jobs
//
// # Adding a New Import Kind
//
//  1. Add the ImportKind constant in internal/entities/imports.go and the
//     gorm model next to the other event entities.
//
//  2. Create a repository sub-package under internal/database/ with a
//     Create method that passes errors through dberr.Translate.
//
//  3. Declare a field table and Normalize function in internal/importers,
//     then a kind runner in kinds.go wired through Importer.runner.
//
//  4. Add a template in templates.go and a Catalog case in
//     internal/services/catalog.go.
//
//  5. Add compile-time checks to checks.go:
//
//     var _ importers.VenueStore = (*venues.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for examples.
package interfaces
