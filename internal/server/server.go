package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	analyticsdomain "github.com/itechperu/storefront/internal/analytics/domain"
	"github.com/itechperu/storefront/internal/auth"
	catalogdomain "github.com/itechperu/storefront/internal/catalog/domain"
	"github.com/itechperu/storefront/internal/config"
	contentdomain "github.com/itechperu/storefront/internal/content/domain"
	"github.com/itechperu/storefront/internal/metrics"
	"github.com/itechperu/storefront/internal/stock"
	"github.com/itechperu/storefront/internal/storage"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, m *metrics.Metrics, reg *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(metrics.GinMiddleware(m))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return r
}

func registerGin(log *zap.Logger, m *metrics.Metrics, reg *prometheus.Registry) *gin.Engine {
	return NewEngine(log, m, reg)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	log          *zap.Logger
	catalogSvc   catalogdomain.Service
	contentSvc   contentdomain.Service
	analyticsSvc analyticsdomain.Service
	authSvc      *auth.Service
	stockCalc    *stock.Calculator
	uploader     storage.Uploader
	metrics      *metrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	Log          *zap.Logger
	CatalogSvc   catalogdomain.Service
	ContentSvc   contentdomain.Service
	AnalyticsSvc analyticsdomain.Service
	AuthSvc      *auth.Service
	StockCalc    *stock.Calculator
	Uploader     storage.Uploader
	Metrics      *metrics.Metrics
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		log:          p.Log,
		catalogSvc:   p.CatalogSvc,
		contentSvc:   p.ContentSvc,
		analyticsSvc: p.AnalyticsSvc,
		authSvc:      p.AuthSvc,
		stockCalc:    p.StockCalc,
		uploader:     p.Uploader,
		metrics:      p.Metrics,
	}

	s.registerPublicRoutes()
	s.registerAdminRoutes()

	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerPublicRoutes() {
	api := s.engine.Group("/api")

	api.GET("/products", s.ListProducts)
	api.GET("/products/:slug", s.GetProductBySlug)

	api.GET("/content/landing", s.GetLandingContent)
	api.GET("/content/home-sections", s.GetHomeSections)

	api.POST("/track/whatsapp", s.TrackWhatsAppClick)
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/api/admin")

	admin.POST("/login", s.Login)
	admin.POST("/logout", s.Logout)

	admin.GET("/products", s.AdminRequired(), s.AdminListProducts)
	admin.PUT("/products", s.AdminRequired(), s.AdminSaveProduct)
	admin.DELETE("/products", s.AdminRequired(), s.AdminDeleteProduct)

	admin.GET("/landing", s.AdminRequired(), s.AdminGetLanding)
	admin.PUT("/landing", s.AdminRequired(), s.AdminSaveLanding)
	admin.GET("/home-sections", s.AdminRequired(), s.AdminGetHomeSections)
	admin.PUT("/home-sections", s.AdminRequired(), s.AdminSaveHomeSections)

	admin.POST("/upload", s.AdminRequired(), s.AdminUploadImage)

	admin.GET("/analytics/whatsapp", s.AdminRequired(), s.AdminWhatsAppMetrics)
}
