package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/itechperu/storefront/internal/analytics/domain"
)

type gormRepository struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Append(ctx context.Context, event domain.WhatsAppClickEvent) error {
	return r.db.WithContext(ctx).Create(&event).Error
}

func (r *gormRepository) All(ctx context.Context) ([]domain.WhatsAppClickEvent, error) {
	var events []domain.WhatsAppClickEvent
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
