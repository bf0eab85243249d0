package repository

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/itechperu/storefront/internal/catalog/domain"
	"github.com/itechperu/storefront/internal/config"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Static is the read-only catalog fallback: a pre-normalized product set
// loaded from a JSON file at startup and hot-reloaded on change. Writes are
// rejected; admins edit products only through the remote store.
type Static struct {
	log     *zap.Logger
	path    string
	current atomic.Value // holds []domain.Product
}

// NewStatic loads the fallback catalog file and starts watching it.
func NewStatic(cfg config.Config, logger *zap.Logger) (*Static, error) {
	repo := &Static{log: logger.Named("catalog.static"), path: cfg.CatalogFile}
	repo.current.Store([]domain.Product{})

	if err := repo.load(); err != nil {
		repo.log.Warn("static catalog file unavailable, starting empty",
			zap.String("path", cfg.CatalogFile), zap.Error(err))
		return repo, nil
	}

	// viper only drives the fsnotify watch; the document itself is decoded
	// with encoding/json because viper folds map keys to lower case and the
	// payload keys are case-sensitive.
	v := viper.New()
	v.SetConfigFile(cfg.CatalogFile)
	v.SetConfigType("json")
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		if err := repo.load(); err != nil {
			repo.log.Warn("static catalog reload failed, keeping previous set",
				zap.String("path", e.Name), zap.Error(err))
			return
		}
		repo.log.Info("static catalog reloaded", zap.String("path", e.Name))
	})

	return repo, nil
}

// load runs every file entry through payload normalization so the in-memory
// set is always well formed; malformed entries are dropped with a warning.
func (r *Static) load() error {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return err
	}

	var doc struct {
		Products []any `json:"products"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}

	products := make([]domain.Product, 0, len(doc.Products))
	for index, entry := range doc.Products {
		payload, ok := entry.(map[string]any)
		if !ok {
			r.log.Warn("static catalog entry is not an object", zap.Int("index", index))
			continue
		}
		product, err := domain.NormalizePayload(payload)
		if err != nil {
			r.log.Warn("static catalog entry dropped", zap.Int("index", index), zap.Error(err))
			continue
		}
		products = append(products, product)
	}
	r.current.Store(products)
	return nil
}

func (r *Static) products() []domain.Product {
	return r.current.Load().([]domain.Product)
}

func (r *Static) List(ctx context.Context) ([]domain.Product, error) {
	items := r.products()
	out := make([]domain.Product, len(items))
	copy(out, items)
	SortProducts(out)
	return out, nil
}

func (r *Static) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	for _, product := range r.products() {
		if product.Slug == slug {
			found := product
			return &found, nil
		}
	}
	return nil, nil
}

func (r *Static) Upsert(ctx context.Context, product domain.Product) error {
	return domain.ErrReadOnly
}

func (r *Static) Delete(ctx context.Context, id string) error {
	return domain.ErrReadOnly
}

// SortProducts applies the catalog listing contract: featured items always
// precede non-featured, ties broken by higher price first.
func SortProducts(items []domain.Product) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Featured != items[j].Featured {
			return items[i].Featured
		}
		return items[i].Price > items[j].Price
	})
}
