// Package routes defines the API routing configuration.
// It builds the walet service stack and registers its HTTP routes.
package routes

import (
	"walet/internal/config"
	"walet/internal/handlers"
	"walet/internal/repositories"
	"walet/internal/repositories/cache"
	"walet/internal/services/notification"
	"walet/internal/services/walet"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencies are the shared resources the routes are built from.
type Dependencies struct {
	Config config.Config
	DB     *gorm.DB
	// Cache is nil when redis is disabled.
	Cache    *cache.CacheService
	Logger   *zap.Logger
	Registry *prometheus.Registry
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Initialize repositories
	waletRepo := repositories.NewWaletRepository(deps.DB)
	if deps.Cache != nil {
		waletRepo = repositories.NewCachedWaletRepository(waletRepo, deps.Cache, logger)
	}

	var metrics walet.MetricsCollector = &walet.NoopMetricsCollector{}
	if deps.Registry != nil {
		metrics = walet.NewPrometheusMetrics(deps.Registry)
	}

	waletService := walet.NewService(
		waletRepo,
		notification.NewService(logger),
		walet.WaletConfig{HashPasswords: deps.Config.HashPasswords},
		metrics,
		logger,
	)
	waletHandler := handlers.NewWaletHandler(waletService, deps.Config.AppName, logger)

	// a nil *CacheService must not become a non-nil Pinger
	var healthHandler *handlers.HealthHandler
	if deps.Cache != nil {
		healthHandler = handlers.NewHealthHandler(deps.DB, deps.Cache)
	} else {
		healthHandler = handlers.NewHealthHandler(deps.DB, nil)
	}

	setupPublicRoutes(app, healthHandler, deps.Registry)

	api := app.Group("/api")
	setupWaletRoutes(api, waletHandler)
}

func setupPublicRoutes(app *fiber.App, health *handlers.HealthHandler, registry *prometheus.Registry) {
	app.Get("/health", health.HealthCheck)
	if registry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}
}

func setupWaletRoutes(router fiber.Router, h *handlers.WaletHandler) {
	walets := router.Group("/walets")
	walets.Post("/", h.CreateWalet)
	walets.Get("/", h.GetAllWalets)
	walets.Put("/", h.MethodNotAllowed)
	walets.Patch("/", h.MethodNotAllowed)
	walets.Get("/:id", h.GetWalet)
	walets.Put("/:id", h.UpdateWalet)
	walets.Patch("/:id", h.PartialUpdateWalet)
	walets.Delete("/:id", h.DeleteWalet)
}
