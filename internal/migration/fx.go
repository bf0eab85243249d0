// Package migration applies the schema on startup when a remote database is
// configured. Static-only deployments have no schema to manage.
package migration

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	analyticsdomain "github.com/itechperu/storefront/internal/analytics/domain"
	catalogdomain "github.com/itechperu/storefront/internal/catalog/domain"
	contentrepository "github.com/itechperu/storefront/internal/content/repository"
)

type Params struct {
	fx.In

	Log *zap.Logger
	DB  *gorm.DB `optional:"true"`
}

func AutoMigrate(p Params) error {
	if p.DB == nil {
		return nil
	}

	p.Log.Info("running schema migration")
	return p.DB.AutoMigrate(
		&catalogdomain.Product{},
		&contentrepository.SiteContentDoc{},
		&analyticsdomain.WhatsAppClickEvent{},
	)
}

var Module = fx.Module("migration",
	fx.Invoke(AutoMigrate),
)
