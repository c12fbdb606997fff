package services

import (
	"gorm.io/gorm"

	"github.com/mrlokans/eventadmin/internal/database/attendees"
	"github.com/mrlokans/eventadmin/internal/database/exhibitors"
	"github.com/mrlokans/eventadmin/internal/database/groups"
	"github.com/mrlokans/eventadmin/internal/database/sessions"
	"github.com/mrlokans/eventadmin/internal/database/speakers"
	"github.com/mrlokans/eventadmin/internal/database/sponsors"
	"github.com/mrlokans/eventadmin/internal/importers"
)

// NewImportStores binds every import kind to its gorm repository.
func NewImportStores(db *gorm.DB) importers.Stores {
	return importers.Stores{
		Speakers:   speakers.NewRepository(db),
		Sessions:   sessions.NewRepository(db),
		Exhibitors: exhibitors.NewRepository(db),
		Sponsors:   sponsors.NewRepository(db),
		Groups:     groups.NewRepository(db),
		Attendees:  attendees.NewRepository(db),
	}
}
