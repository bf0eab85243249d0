package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/itechperu/storefront/internal/catalog/domain"
	"github.com/itechperu/storefront/internal/config"
)

func writeCatalog(t *testing.T, content string) config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return config.Config{CatalogFile: path}
}

func TestStaticLoadsAndSortsCatalog(t *testing.T) {
	cfg := writeCatalog(t, `{
	  "products": [
	    {"id": "barato", "name": "Barato", "summary": "s", "image": "a.webp",
	     "badgeText": "b", "conditionLabel": "Nuevo", "price": 100},
	    {"id": "caro", "name": "Caro", "summary": "s", "image": "b.webp",
	     "badgeText": "b", "conditionLabel": "Nuevo", "price": 900},
	    {"id": "destacado", "name": "Destacado", "summary": "s", "image": "c.webp",
	     "badgeText": "b", "conditionLabel": "Nuevo", "price": 50, "featured": true}
	  ]
	}`)

	repo, err := NewStatic(cfg, zap.NewNop())
	require.NoError(t, err)

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "destacado", products[0].ID)
	assert.Equal(t, "caro", products[1].ID)
	assert.Equal(t, "barato", products[2].ID)
}

func TestStaticKeepsCamelCasePayloadKeys(t *testing.T) {
	cfg := writeCatalog(t, `{
	  "products": [
	    {"id": "iphone-14", "name": "iPhone 14", "summary": "s", "image": "a.webp",
	     "badgeText": "Mas vendido", "badgeType": "new", "conditionLabel": "Nuevo sellado",
	     "price": 2899, "baseStock": 6, "isBestSeller": true,
	     "images": [{"url": "b.webp", "order": 1}, {"url": "a.webp", "order": 0, "isPrimary": true}]
	  }]
	}`)

	repo, err := NewStatic(cfg, zap.NewNop())
	require.NoError(t, err)

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	got := products[0]
	assert.Equal(t, "Mas vendido", got.BadgeText)
	assert.Equal(t, domain.BadgeNew, got.BadgeType)
	assert.Equal(t, "Nuevo sellado", got.ConditionLabel)
	assert.Equal(t, 6, got.BaseStock)
	assert.True(t, got.IsBestSeller)
	require.Len(t, got.Images, 2)
	assert.True(t, got.Images[0].IsPrimary)
	assert.Equal(t, "a.webp", got.Images[0].URL)
}

func TestStaticHotReloadReplacesProductSet(t *testing.T) {
	cfg := writeCatalog(t, `{
	  "products": [
	    {"id": "iphone-14", "name": "iPhone 14", "summary": "s", "image": "a.webp",
	     "badgeText": "b", "conditionLabel": "Nuevo", "price": 2899}
	  ]
	}`)

	repo, err := NewStatic(cfg, zap.NewNop())
	require.NoError(t, err)

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	next := `{
	  "products": [
	    {"id": "iphone-14", "name": "iPhone 14", "summary": "s", "image": "a.webp",
	     "badgeText": "b", "conditionLabel": "Nuevo", "price": 2899},
	    {"id": "galaxy-s24", "name": "Galaxy S24", "summary": "s", "image": "b.webp",
	     "badgeText": "b", "conditionLabel": "Nuevo", "price": 3499}
	  ]
	}`
	require.NoError(t, os.WriteFile(cfg.CatalogFile, []byte(next), 0o644))

	require.Eventually(t, func() bool {
		reloaded, err := repo.List(context.Background())
		return err == nil && len(reloaded) == 2
	}, 5*time.Second, 20*time.Millisecond)

	found, err := repo.GetBySlug(context.Background(), "galaxy-s24")
	require.NoError(t, err)
	require.NotNil(t, found)
}

func TestStaticDropsMalformedEntries(t *testing.T) {
	cfg := writeCatalog(t, `{
	  "products": [
	    {"id": "valido", "name": "Valido", "summary": "s", "image": "a.webp",
	     "badgeText": "b", "conditionLabel": "Nuevo", "price": 100},
	    {"id": "sin-nombre", "summary": "s", "image": "a.webp",
	     "badgeText": "b", "conditionLabel": "Nuevo", "price": 100},
	    "no-es-objeto"
	  ]
	}`)

	repo, err := NewStatic(cfg, zap.NewNop())
	require.NoError(t, err)

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "valido", products[0].ID)
}

func TestStaticStartsEmptyWhenFileMissing(t *testing.T) {
	cfg := config.Config{CatalogFile: filepath.Join(t.TempDir(), "no-existe.json")}

	repo, err := NewStatic(cfg, zap.NewNop())
	require.NoError(t, err)

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestStaticGetBySlug(t *testing.T) {
	cfg := writeCatalog(t, `{
	  "products": [
	    {"id": "iphone-14", "name": "iPhone 14", "summary": "s", "image": "a.webp",
	     "badgeText": "b", "conditionLabel": "Nuevo", "price": 2899}
	  ]
	}`)

	repo, err := NewStatic(cfg, zap.NewNop())
	require.NoError(t, err)

	found, err := repo.GetBySlug(context.Background(), "iphone-14")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "iPhone 14", found.Name)

	missing, err := repo.GetBySlug(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStaticRejectsWrites(t *testing.T) {
	cfg := writeCatalog(t, `{"products": []}`)

	repo, err := NewStatic(cfg, zap.NewNop())
	require.NoError(t, err)

	ctx := context.Background()
	assert.ErrorIs(t, repo.Upsert(ctx, domain.Product{ID: "x"}), domain.ErrReadOnly)
	assert.ErrorIs(t, repo.Delete(ctx, "x"), domain.ErrReadOnly)
}

func TestSortProductsIsStable(t *testing.T) {
	items := []domain.Product{
		{ID: "a", Price: 100},
		{ID: "b", Price: 100},
		{ID: "c", Price: 100, Featured: true},
	}
	SortProducts(items)

	assert.Equal(t, "c", items[0].ID)
	assert.Equal(t, "a", items[1].ID)
	assert.Equal(t, "b", items[2].ID)
}
