package repository

import (
	"context"

	"github.com/itechperu/storefront/internal/catalog/domain"
	"github.com/itechperu/storefront/pkg/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gorm maps catalog operations 1:1 onto the products collection in the
// remote document store.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (r *Gorm) List(ctx context.Context) ([]domain.Product, error) {
	var items []domain.Product
	err := r.db.WithContext(ctx).
		Order("featured DESC, price DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Gorm) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var items []domain.Product
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		Limit(1).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

// Upsert replaces the whole document keyed by id. Last write wins; there is
// no version column. Slugs are unique, so saving a new product under a slug
// another product already owns fails.
func (r *Gorm) Upsert(ctx context.Context, product domain.Product) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&product).Error
	if db.IsDuplicateKeyErr(err) {
		return domain.ErrSlugTaken
	}
	return err
}

func (r *Gorm) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Product{}).Error
}
