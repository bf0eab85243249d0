package catalog

import (
	"github.com/itechperu/storefront/internal/catalog/repository"
	"github.com/itechperu/storefront/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.NewStatic),
	fx.Provide(service.New),
)
