package domain

import (
	"context"
	"time"
)

// WhatsAppClickEvent is one recorded tap on a WhatsApp call-to-action.
type WhatsAppClickEvent struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	Source      string    `gorm:"column:source;index" json:"source"`
	Href        string    `gorm:"column:href" json:"href"`
	ProductID   *string   `gorm:"column:product_id" json:"productId"`
	ProductName *string   `gorm:"column:product_name" json:"productName"`
	Price       *int      `gorm:"column:price" json:"price"`
	PagePath    *string   `gorm:"column:page_path" json:"pagePath"`
	UserAgent   *string   `gorm:"column:user_agent" json:"userAgent"`
	IPAddress   *string   `gorm:"column:ip_address" json:"ipAddress"`
	CreatedAt   time.Time `gorm:"column:created_at;index" json:"createdAt"`
}

func (WhatsAppClickEvent) TableName() string {
	return "whatsapp_events"
}

// ClickInput is the untrusted payload posted by the storefront client.
type ClickInput struct {
	Source      string   `json:"source"`
	Href        string   `json:"href"`
	ProductID   *string  `json:"productId"`
	ProductName *string  `json:"productName"`
	Price       *float64 `json:"price"`
	PagePath    *string  `json:"pagePath"`
	UserAgent   string   `json:"-"`
	IPAddress   string   `json:"-"`
}

type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

type ProductCount struct {
	ProductName string `json:"productName"`
	Count       int    `json:"count"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Metrics is the aggregated view the admin dashboard renders.
type Metrics struct {
	TotalClicks       int            `json:"totalClicks"`
	Last7DaysClicks   int            `json:"last7DaysClicks"`
	Last24HoursClicks int            `json:"last24HoursClicks"`
	BySource          []SourceCount  `json:"bySource"`
	TopProducts       []ProductCount `json:"topProducts"`
	DailySeries       []DailyCount   `json:"dailySeries"`
}

// Repository persists click events. Append is fire-and-forget from the
// caller's perspective; All returns every stored event for aggregation.
type Repository interface {
	Append(ctx context.Context, event WhatsAppClickEvent) error
	All(ctx context.Context) ([]WhatsAppClickEvent, error)
}

// Service validates incoming clicks and aggregates stored ones. Track
// reports whether the payload passed validation; persistence failures are
// still swallowed so the public endpoint never errors.
type Service interface {
	Track(ctx context.Context, input ClickInput) bool
	Metrics(ctx context.Context) (Metrics, error)
}
