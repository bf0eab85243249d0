package service

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/itechperu/storefront/internal/analytics/domain"
	"github.com/itechperu/storefront/internal/analytics/repository"
	"github.com/itechperu/storefront/internal/clock"
)

const dailySeriesDays = 14

// Clicks are only counted when they point at an actual WhatsApp chat link.
var whatsappHrefRegex = regexp.MustCompile(`(?i)^https://wa\.me/.+`)

// Peru has no DST, so a fixed offset is a safe fallback when the tzdata
// database is unavailable.
var analyticsLocation = func() *time.Location {
	loc, err := time.LoadLocation("America/Lima")
	if err != nil {
		return time.FixedZone("-05", -5*60*60)
	}
	return loc
}()

var spanishMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "set", "oct", "nov", "dic",
}

type Params struct {
	fx.In

	Log   *zap.Logger
	Clock clock.Clock
	Node  *snowflake.Node
	DB    *gorm.DB `optional:"true"`
}

type analyticsService struct {
	log   *zap.Logger
	clock clock.Clock
	node  *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	s := &analyticsService{log: p.Log, clock: p.Clock, node: p.Node}
	if p.DB != nil {
		s.repo = repository.New(p.DB)
	}
	return s
}

func trimPtr(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Track records a click. Invalid payloads and backend failures are dropped
// silently so the storefront client never sees an error.
func (s *analyticsService) Track(ctx context.Context, input domain.ClickInput) bool {
	source := strings.TrimSpace(input.Source)
	href := strings.TrimSpace(input.Href)
	if source == "" || href == "" || !whatsappHrefRegex.MatchString(href) {
		return false
	}
	if s.repo == nil {
		return true
	}

	event := domain.WhatsAppClickEvent{
		ID:          s.node.Generate().Int64(),
		Source:      source,
		Href:        href,
		ProductID:   trimPtr(input.ProductID),
		ProductName: trimPtr(input.ProductName),
		PagePath:    trimPtr(input.PagePath),
		UserAgent:   trimPtr(&input.UserAgent),
		IPAddress:   trimPtr(&input.IPAddress),
		CreatedAt:   s.clock.Now().UTC(),
	}
	if input.Price != nil && !math.IsNaN(*input.Price) && !math.IsInf(*input.Price, 0) {
		price := int(math.Round(*input.Price))
		event.Price = &price
	}

	if err := s.repo.Append(ctx, event); err != nil {
		s.log.Error("no se pudo registrar evento WhatsApp", zap.Error(err))
	}
	return true
}

func dayKey(t time.Time) string {
	return t.In(analyticsLocation).Format("2006-01-02")
}

func dayLabel(t time.Time) string {
	local := t.In(analyticsLocation)
	return local.Format("02") + " " + spanishMonths[local.Month()-1]
}

type keyCount struct {
	key   string
	count int
}

// sortCountsDesc orders by count descending, keeping first-seen order for
// ties.
func sortCountsDesc(counts map[string]int, order []string) []keyCount {
	out := make([]keyCount, 0, len(order))
	for _, key := range order {
		out = append(out, keyCount{key: key, count: counts[key]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].count > out[j].count
	})
	return out
}

// Metrics aggregates every stored event into dashboard figures. The daily
// series covers the trailing 14 calendar days in Lima time, zero-filled.
func (s *analyticsService) Metrics(ctx context.Context) (domain.Metrics, error) {
	empty := domain.Metrics{
		BySource:    []domain.SourceCount{},
		TopProducts: []domain.ProductCount{},
		DailySeries: []domain.DailyCount{},
	}
	if s.repo == nil {
		return empty, nil
	}

	events, err := s.repo.All(ctx)
	if err != nil {
		return domain.Metrics{}, err
	}
	if len(events) == 0 {
		return empty, nil
	}

	now := s.clock.Now()
	sevenDaysAgo := now.Add(-7 * 24 * time.Hour)
	oneDayAgo := now.Add(-24 * time.Hour)

	bySource := map[string]int{}
	var sourceOrder []string
	byProduct := map[string]int{}
	var productOrder []string
	byDay := map[string]int{}
	last7 := 0
	last24 := 0

	for _, event := range events {
		source := event.Source
		if source == "" {
			source = "unknown"
		}
		if _, seen := bySource[source]; !seen {
			sourceOrder = append(sourceOrder, source)
		}
		bySource[source]++

		if event.ProductName != nil && *event.ProductName != "" {
			name := *event.ProductName
			if _, seen := byProduct[name]; !seen {
				productOrder = append(productOrder, name)
			}
			byProduct[name]++
		}

		byDay[dayKey(event.CreatedAt)]++
		if !event.CreatedAt.Before(sevenDaysAgo) {
			last7++
		}
		if !event.CreatedAt.Before(oneDayAgo) {
			last24++
		}
	}

	metrics := domain.Metrics{
		TotalClicks:       len(events),
		Last7DaysClicks:   last7,
		Last24HoursClicks: last24,
		BySource:          []domain.SourceCount{},
		TopProducts:       []domain.ProductCount{},
		DailySeries:       make([]domain.DailyCount, 0, dailySeriesDays),
	}

	for _, item := range sortCountsDesc(bySource, sourceOrder) {
		metrics.BySource = append(metrics.BySource, domain.SourceCount{Source: item.key, Count: item.count})
	}
	for i, item := range sortCountsDesc(byProduct, productOrder) {
		if i == 5 {
			break
		}
		metrics.TopProducts = append(metrics.TopProducts, domain.ProductCount{ProductName: item.key, Count: item.count})
	}

	for offset := dailySeriesDays - 1; offset >= 0; offset-- {
		date := now.Add(-time.Duration(offset) * 24 * time.Hour)
		key := dayKey(date)
		metrics.DailySeries = append(metrics.DailySeries, domain.DailyCount{
			Date:  key,
			Label: dayLabel(date),
			Count: byDay[key],
		})
	}

	return metrics, nil
}
