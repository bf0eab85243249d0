package domain

import (
	"time"

	"gorm.io/datatypes"
)

// ProductCategory is the fixed storefront category set.
type ProductCategory string

const (
	CategoryIPad    ProductCategory = "iPad"
	CategoryLaptop  ProductCategory = "Laptop"
	CategoryTablet  ProductCategory = "Tablet"
	CategoryReloj   ProductCategory = "Reloj"
	CategoryCelular ProductCategory = "Celular"
)

// DefaultCategory is used when an admin payload carries an unknown category.
const DefaultCategory = CategoryCelular

var ProductCategories = []ProductCategory{
	CategoryIPad,
	CategoryLaptop,
	CategoryTablet,
	CategoryReloj,
	CategoryCelular,
}

// ProductBadgeType labels the badge shown on product cards.
type ProductBadgeType string

const (
	BadgeOffer ProductBadgeType = "offer"
	BadgeScore ProductBadgeType = "score"
	BadgeNew   ProductBadgeType = "new"
)

const DefaultBadgeType = BadgeOffer

// ProductImage is one entry of the ordered image set. Exactly one image is
// primary whenever the list is non-empty.
type ProductImage struct {
	URL       string `json:"url"`
	Order     int    `json:"order"`
	IsPrimary bool   `json:"isPrimary"`
}

// ProductColor carries a canonical #RRGGBB hex and a dense order index.
type ProductColor struct {
	Name  string `json:"name"`
	Hex   string `json:"hex"`
	Order int    `json:"order"`
}

// Product is a catalog document keyed by ID. Upserts are last-write-wins.
type Product struct {
	ID             string                              `json:"id" gorm:"primaryKey;type:text"`
	Slug           string                              `json:"slug" gorm:"type:text;not null;uniqueIndex:ux_products_slug"`
	Name           string                              `json:"name" gorm:"type:text;not null"`
	Category       ProductCategory                     `json:"category" gorm:"type:text;not null"`
	Model          string                              `json:"model,omitempty" gorm:"type:text"`
	Storage        string                              `json:"storage,omitempty" gorm:"type:text"`
	Colors         datatypes.JSONSlice[ProductColor]   `json:"colors"`
	Images         datatypes.JSONSlice[ProductImage]   `json:"images"`
	Summary        string                              `json:"summary" gorm:"type:text;not null"`
	Highlights     datatypes.JSONSlice[string]         `json:"highlights"`
	Tags           datatypes.JSONSlice[string]         `json:"tags"`
	Image          string                              `json:"image" gorm:"type:text"`
	BadgeText      string                              `json:"badgeText" gorm:"type:text;not null"`
	BadgeType      ProductBadgeType                    `json:"badgeType" gorm:"type:text;not null"`
	ConditionLabel string                              `json:"conditionLabel" gorm:"type:text;not null"`
	Price          int                                 `json:"price" gorm:"not null"`
	PreviousPrice  *int                                `json:"previousPrice,omitempty"`
	BaseStock      int                                 `json:"baseStock" gorm:"not null;default:1"`
	IsNewArrival   bool                                `json:"isNewArrival" gorm:"not null;default:false"`
	IsBestSeller   bool                                `json:"isBestSeller" gorm:"not null;default:false"`
	Featured       bool                                `json:"featured" gorm:"not null;default:false;index:ix_products_featured"`
	CreatedAt      time.Time                           `json:"-" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time                           `json:"-" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Product) TableName() string { return "products" }

// PrimaryImageURL returns the flagged primary image, re-deriving from the
// legacy single-image field when the structured list is absent.
func (p Product) PrimaryImageURL() string {
	images := NormalizeImages(p.Images, p.Image)
	for _, image := range images {
		if image.IsPrimary {
			return image.URL
		}
	}
	if len(images) > 0 {
		return images[0].URL
	}
	return p.Image
}
