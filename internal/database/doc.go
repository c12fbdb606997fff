// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	├── dberr/           # Driver error translation (duplicate, not found)
//	├── events/          # Event CRUD
//	├── speakers/        # Speaker create/list
//	├── sessions/        # Sessions plus speaker and group assignments
//	├── exhibitors/      # Exhibitor create/list
//	├── sponsors/        # Sponsor create/list
//	├── groups/          # Groups, including case-insensitive get-or-create
//	├── attendees/       # Attendees plus group memberships
//	├── imports/         # Import session history
//	└── audit/           # Audit log
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	db, err := database.NewDatabase("./eventadmin.db", logger)
//
//	speakersRepo := speakers.NewRepository(db.DB)
//	groupsRepo := groups.NewRepository(db.DB)
//
//	err = speakersRepo.CreateSpeaker(ctx, &entities.Speaker{EventID: 1, FullName: "Jane Doe"})
//	existing, err := groupsRepo.ListGroups(ctx, eventID)
//
// Create methods return errors passed through dberr.Translate, so a
// uniqueness violation is always reported as entities.ErrDuplicate.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Implement the required interface
//  5. Add a compile-time interface check in internal/interfaces/checks.go
package database
