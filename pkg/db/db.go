package db

import (
	"time"

	"github.com/itechperu/storefront/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module provides the shared gorm connection handle. The handle is nil when
// the remote document store credential triple is absent; callers running in
// static-catalog mode must tolerate that.
var Module = fx.Provide(New)

// New opens the gorm connection once at startup and configures the pool.
func New(cfg config.Config, logger *zap.Logger) (*gorm.DB, error) {
	if !cfg.CatalogBackendConfigured() {
		logger.Info("remote document store not configured, running on static catalog fallback")
		return nil, nil
	}

	dialect, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialect, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConn)
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConn)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetime) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.DBConnMaxIdleTime) * time.Second)

	logger.Info("remote document store connected",
		zap.String("type", cfg.DBType),
		zap.String("host", cfg.DBHost),
		zap.String("name", cfg.DBName),
	)
	return conn, nil
}
