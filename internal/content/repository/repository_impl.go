package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/itechperu/storefront/internal/content/domain"
)

const (
	landingDocID      = "landing"
	homeSectionsDocID = "home_sections"
)

// SiteContentDoc is one singleton content document. The payload column holds
// the whole document as JSON and is replaced on every save.
type SiteContentDoc struct {
	ID        string         `gorm:"column:id;type:text;primaryKey"`
	Payload   datatypes.JSON `gorm:"column:payload"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (SiteContentDoc) TableName() string {
	return "site_content"
}

type gormRepository struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) getDoc(ctx context.Context, id string) (map[string]any, error) {
	var doc SiteContentDoc
	result := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&doc)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var payload map[string]any
	if err := json.Unmarshal(doc.Payload, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (r *gormRepository) saveDoc(ctx context.Context, id string, content any) error {
	payload, err := json.Marshal(content)
	if err != nil {
		return err
	}

	doc := SiteContentDoc{ID: id, Payload: payload, UpdatedAt: time.Now().UTC()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&doc).Error
}

func (r *gormRepository) GetLanding(ctx context.Context) (map[string]any, error) {
	return r.getDoc(ctx, landingDocID)
}

func (r *gormRepository) SaveLanding(ctx context.Context, content domain.LandingContent) error {
	return r.saveDoc(ctx, landingDocID, content)
}

func (r *gormRepository) GetHomeSections(ctx context.Context) (map[string]any, error) {
	return r.getDoc(ctx, homeSectionsDocID)
}

func (r *gormRepository) SaveHomeSections(ctx context.Context, content domain.HomeSectionsContent) error {
	return r.saveDoc(ctx, homeSectionsDocID, content)
}
