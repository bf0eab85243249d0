package service

import (
	"context"
	"strings"

	"github.com/itechperu/storefront/internal/catalog/domain"
	"github.com/itechperu/storefront/internal/catalog/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Log    *zap.Logger
	DB     *gorm.DB `optional:"true"`
	Static *repository.Static
}

// Service routes reads to the remote store with a static fallback and
// gates writes on the remote store being configured. The backend choice is
// made once here, at construction.
type Service struct {
	log    *zap.Logger
	remote domain.Repository
	static domain.Repository
}

func New(p Params) domain.Service {
	svc := &Service{
		log:    p.Log.Named("catalog.service"),
		static: p.Static,
	}
	if p.DB != nil {
		svc.remote = repository.NewGorm(p.DB)
	}
	return svc
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if s.remote != nil {
		items, err := s.remote.List(ctx)
		if err == nil {
			return hydrateAll(items), nil
		}
		s.log.Error("remote catalog list failed, serving static fallback", zap.Error(err))
	}
	items, err := s.static.List(ctx)
	if err != nil {
		return nil, err
	}
	return hydrateAll(items), nil
}

func (s *Service) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, nil
	}

	if s.remote != nil {
		product, err := s.remote.GetBySlug(ctx, slug)
		if err == nil {
			if product == nil {
				return nil, nil
			}
			hydrated := hydrate(*product)
			return &hydrated, nil
		}
		s.log.Error("remote catalog lookup failed, serving static fallback",
			zap.String("slug", slug), zap.Error(err))
	}

	product, err := s.static.GetBySlug(ctx, slug)
	if err != nil || product == nil {
		return nil, err
	}
	hydrated := hydrate(*product)
	return &hydrated, nil
}

func (s *Service) FeaturedProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	items, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	featured := make([]domain.Product, 0, limit)
	for _, product := range items {
		if !product.Featured {
			continue
		}
		featured = append(featured, product)
		if len(featured) == limit {
			break
		}
	}
	return featured, nil
}

func (s *Service) CountProducts(ctx context.Context) (int, error) {
	items, err := s.ListProducts(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (s *Service) AdminListProducts(ctx context.Context) ([]domain.Product, error) {
	if s.remote == nil {
		return nil, domain.ErrNotConfigured
	}
	items, err := s.remote.List(ctx)
	if err != nil {
		return nil, err
	}
	return hydrateAll(items), nil
}

// SaveProduct upserts by id. Remote write failures propagate to the caller;
// there is no silent fallback for writes.
func (s *Service) SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	if s.remote == nil {
		return nil, domain.ErrNotConfigured
	}
	if err := s.remote.Upsert(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if s.remote == nil {
		return domain.ErrNotConfigured
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrIDRequired
	}
	return s.remote.Delete(ctx, id)
}

// hydrate re-derives presentation fields from legacy storage shapes: the
// primary image from the single-URL field and model/storage/colors from
// summary-embedded lines when the structured fields are absent.
func hydrate(product domain.Product) domain.Product {
	product.Images = domain.NormalizeImages(product.Images, product.Image)
	product.Image = product.PrimaryImageURL()

	if len(product.Colors) == 0 {
		product.Colors = domain.ColorsFromSummary(product.Summary)
	} else {
		product.Colors = domain.NormalizeColors(product.Colors)
	}
	if product.Model == "" {
		product.Model = domain.ModelFromSummary(product.Summary)
	}
	if product.Storage == "" {
		product.Storage = domain.StorageFromSummary(product.Summary)
	}
	return product
}

func hydrateAll(items []domain.Product) []domain.Product {
	out := make([]domain.Product, len(items))
	for index, product := range items {
		out[index] = hydrate(product)
	}
	return out
}
