package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/itechperu/storefront/internal/analytics/domain"
	"github.com/itechperu/storefront/internal/clock"
)

func setupService(t *testing.T) (domain.Service, *gorm.DB, *clock.FakeClock) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.WhatsAppClickEvent{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	fc := clock.NewFakeClock(time.Date(2026, time.March, 14, 15, 0, 0, 0, time.UTC))
	svc := New(Params{Log: zap.NewNop(), Clock: fc, Node: node, DB: db})
	return svc, db, fc
}

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestTrackStoresValidClick(t *testing.T) {
	svc, db, _ := setupService(t)

	svc.Track(context.Background(), domain.ClickInput{
		Source:      "  product_page ",
		Href:        "https://wa.me/51999999999?text=hola",
		ProductID:   strPtr("iphone-15-pro"),
		ProductName: strPtr("iPhone 15 Pro"),
		Price:       floatPtr(4299),
		PagePath:    strPtr("/producto/iphone-15-pro"),
		UserAgent:   "Mozilla/5.0",
		IPAddress:   "190.42.0.1",
	})

	var events []domain.WhatsAppClickEvent
	require.NoError(t, db.Find(&events).Error)
	require.Len(t, events, 1)
	assert.Equal(t, "product_page", events[0].Source)
	require.NotNil(t, events[0].Price)
	assert.Equal(t, 4299, *events[0].Price)
}

func TestTrackDropsInvalidHref(t *testing.T) {
	svc, db, _ := setupService(t)

	inputs := []domain.ClickInput{
		{Source: "hero", Href: "https://example.com/whatsapp"},
		{Source: "hero", Href: "http://wa.me/51999999999"},
		{Source: "hero", Href: ""},
		{Source: "", Href: "https://wa.me/51999999999"},
	}
	for _, input := range inputs {
		svc.Track(context.Background(), input)
	}

	var count int64
	require.NoError(t, db.Model(&domain.WhatsAppClickEvent{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTrackAcceptsCaseInsensitiveHref(t *testing.T) {
	svc, db, _ := setupService(t)

	svc.Track(context.Background(), domain.ClickInput{
		Source: "floating_button",
		Href:   "HTTPS://WA.ME/51999999999",
	})

	var count int64
	require.NoError(t, db.Model(&domain.WhatsAppClickEvent{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMetricsAggregates(t *testing.T) {
	svc, _, fc := setupService(t)
	ctx := context.Background()

	track := func(source, product string) {
		input := domain.ClickInput{Source: source, Href: "https://wa.me/51999999999"}
		if product != "" {
			input.ProductName = &product
		}
		svc.Track(ctx, input)
	}

	// Ten days ago: outside both rolling windows.
	fc.Advance(-10 * 24 * time.Hour)
	track("hero", "iPhone 15 Pro")
	fc.Advance(10 * 24 * time.Hour)

	// Two days ago: inside the 7-day window only.
	fc.Advance(-2 * 24 * time.Hour)
	track("product_page", "iPhone 15 Pro")
	track("product_page", "Galaxy S24 Ultra")
	fc.Advance(2 * 24 * time.Hour)

	// Now: inside both windows.
	track("floating_button", "")

	metrics, err := svc.Metrics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, metrics.TotalClicks)
	assert.Equal(t, 3, metrics.Last7DaysClicks)
	assert.Equal(t, 1, metrics.Last24HoursClicks)

	require.NotEmpty(t, metrics.BySource)
	assert.Equal(t, domain.SourceCount{Source: "product_page", Count: 2}, metrics.BySource[0])

	require.Len(t, metrics.TopProducts, 2)
	assert.Equal(t, domain.ProductCount{ProductName: "iPhone 15 Pro", Count: 2}, metrics.TopProducts[0])
}

func TestMetricsDailySeriesZeroFilled(t *testing.T) {
	svc, _, fc := setupService(t)
	ctx := context.Background()

	svc.Track(ctx, domain.ClickInput{Source: "hero", Href: "https://wa.me/51999999999"})

	metrics, err := svc.Metrics(ctx)
	require.NoError(t, err)
	require.Len(t, metrics.DailySeries, 14)

	// The last bucket is today in Lima time.
	today := metrics.DailySeries[13]
	assert.Equal(t, fc.Now().Add(-5*time.Hour).Format("2006-01-02"), today.Date)
	assert.Equal(t, 1, today.Count)

	for _, day := range metrics.DailySeries[:13] {
		assert.Zero(t, day.Count, day.Date)
		assert.NotEmpty(t, day.Label)
	}
}

func TestMetricsTopProductsCappedAtFive(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, name := range names {
		for j := 0; j <= i; j++ {
			svc.Track(ctx, domain.ClickInput{
				Source:      "catalog",
				Href:        "https://wa.me/51999999999",
				ProductName: &name,
			})
		}
	}

	metrics, err := svc.Metrics(ctx)
	require.NoError(t, err)
	require.Len(t, metrics.TopProducts, 5)
	assert.Equal(t, "G", metrics.TopProducts[0].ProductName)
	assert.Equal(t, 7, metrics.TopProducts[0].Count)
	assert.Equal(t, "C", metrics.TopProducts[4].ProductName)
}

func TestMetricsEmptyWithoutEvents(t *testing.T) {
	svc, _, _ := setupService(t)

	metrics, err := svc.Metrics(context.Background())
	require.NoError(t, err)
	assert.Zero(t, metrics.TotalClicks)
	assert.Empty(t, metrics.BySource)
	assert.Empty(t, metrics.TopProducts)
	assert.Empty(t, metrics.DailySeries)
}
