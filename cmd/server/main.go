// Package main is the entry point for the application.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"walet/internal/config"
	"walet/internal/logging"
	"walet/internal/middleware"
	"walet/internal/repositories"
	"walet/internal/repositories/cache"
	"walet/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	envLoaded := config.LoadEnv()
	cfg := config.Load()

	logger, sync := logging.New(cfg.IsProduction())
	defer func() { _ = sync() }()

	if !envLoaded {
		logger.Info("no .env file found, using environment only")
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	db, err := repositories.OpenDB(cfg.DB)
	if err != nil {
		return err
	}
	defer func() {
		if err := repositories.CloseDB(db); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()
	logger.Info("database connected", zap.String("driver", cfg.DB.Driver))

	var cacheService *cache.CacheService
	if cfg.Redis.Enabled {
		redisClient := cache.NewRedisClient(&cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cacheService = cache.NewCacheService(redisClient, cfg.Redis.TTL)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := cacheService.HealthCheck(ctx)
		cancel()
		if err != nil {
			return err
		}
		defer func() {
			if err := cacheService.Close(); err != nil {
				logger.Warn("failed to close redis connection", zap.Error(err))
			}
		}()
		logger.Info("redis cache enabled", zap.Duration("ttl", cfg.Redis.TTL))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		DisableStartupMessage: cfg.IsProduction(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET,POST,HEAD,PUT,DELETE,PATCH",
		ExposeHeaders: "Location, X-" + cfg.AppName + "-alert, X-" + cfg.AppName + "-error, X-" + cfg.AppName + "-params",
	}))

	routes.SetupRoutes(app, routes.Dependencies{
		Config:   cfg,
		DB:       db,
		Cache:    cacheService,
		Logger:   logger,
		Registry: registry,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	return app.ShutdownWithTimeout(10 * time.Second)
}
