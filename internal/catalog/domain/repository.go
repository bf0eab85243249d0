package domain

import "context"

// Repository is the catalog persistence contract. Listing always returns
// featured products first, higher price first within each group.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	Upsert(ctx context.Context, product Product) error
	Delete(ctx context.Context, id string) error
}
