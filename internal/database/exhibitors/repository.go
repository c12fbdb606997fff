// Package exhibitors provides database operations for event exhibitors.
package exhibitors

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

func (r *Repository) CreateExhibitor(ctx context.Context, exhibitor *entities.Exhibitor) error {
	return dberr.Translate(r.db.WithContext(ctx).Create(exhibitor).Error)
}

func (r *Repository) ListExhibitors(ctx context.Context, eventID uint) ([]entities.Exhibitor, error) {
	var exhibitors []entities.Exhibitor
	err := r.db.WithContext(ctx).Where("event_id = ?", eventID).Order("company_name").Find(&exhibitors).Error
	return exhibitors, err
}
