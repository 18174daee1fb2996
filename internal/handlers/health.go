package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler reports database and cache reachability.
type HealthHandler struct {
	db    *gorm.DB
	cache Pinger
}

// NewHealthHandler builds a HealthHandler. cache may be nil when redis is disabled.
func NewHealthHandler(db *gorm.DB, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	healthy := true
	database := "connected"
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		database = "unreachable"
		healthy = false
	}

	redis := "disabled"
	if h.cache != nil {
		redis = "connected"
		if err := h.cache.HealthCheck(ctx); err != nil {
			redis = "unreachable"
			healthy = false
		}
	}

	status, code := "ok", fiber.StatusOK
	if !healthy {
		status, code = "degraded", fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"services": fiber.Map{
			"database": database,
			"redis":    redis,
		},
	})
}
