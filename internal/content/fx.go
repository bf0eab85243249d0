package content

import (
	"go.uber.org/fx"

	"github.com/itechperu/storefront/internal/content/service"
)

var Module = fx.Module("content.service",
	fx.Provide(service.New),
)
