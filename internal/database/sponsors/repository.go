// Package sponsors provides database operations for event sponsors.
package sponsors

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/eventadmin/internal/database/dberr"
	"github.com/mrlokans/eventadmin/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateSponsor(ctx context.Context, sponsor *entities.Sponsor) error {
	return dberr.Translate(r.db.WithContext(ctx).Create(sponsor).Error)
}

// ListSponsors orders by tier then company name.
func (r *Repository) ListSponsors(ctx context.Context, eventID uint) ([]entities.Sponsor, error) {
	var sponsors []entities.Sponsor
	err := r.db.WithContext(ctx).Where("event_id = ?", eventID).Order("tier").Order("company_name").Find(&sponsors).Error
	return sponsors, err
}
