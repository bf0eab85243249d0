package analytics

import (
	"go.uber.org/fx"

	"github.com/itechperu/storefront/internal/analytics/service"
)

var Module = fx.Module("analytics.service",
	fx.Provide(service.New),
)
