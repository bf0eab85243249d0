package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/itechperu/storefront/internal/analytics"
	"github.com/itechperu/storefront/internal/auth"
	"github.com/itechperu/storefront/internal/catalog"
	"github.com/itechperu/storefront/internal/clock"
	"github.com/itechperu/storefront/internal/config"
	"github.com/itechperu/storefront/internal/content"
	"github.com/itechperu/storefront/internal/metrics"
	"github.com/itechperu/storefront/internal/migration"
	"github.com/itechperu/storefront/internal/server"
	"github.com/itechperu/storefront/internal/stock"
	"github.com/itechperu/storefront/internal/storage"
	"github.com/itechperu/storefront/pkg/db"
	"github.com/itechperu/storefront/pkg/log"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		log.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		metrics.Module,

		// Functional domains
		catalog.Module,
		content.Module,
		analytics.Module,
		auth.Module,
		stock.Module,
		storage.Module,

		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
