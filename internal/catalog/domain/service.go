package domain

import "context"

// Service is the storefront-facing catalog API. Public reads fall back to
// the static catalog when the remote store misbehaves; admin operations
// never fall back silently.
type Service interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*Product, error)
	FeaturedProducts(ctx context.Context, limit int) ([]Product, error)
	CountProducts(ctx context.Context) (int, error)

	AdminListProducts(ctx context.Context) ([]Product, error)
	SaveProduct(ctx context.Context, product Product) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
