package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubPinger struct {
	err error
}

func (p stubPinger) HealthCheck(context.Context) error { return p.err }

func TestHealthCheck(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	tests := []struct {
		name       string
		cache      Pinger
		wantStatus int
		wantRedis  string
	}{
		{name: "redis disabled", cache: nil, wantStatus: fiber.StatusOK, wantRedis: "disabled"},
		{name: "redis up", cache: stubPinger{}, wantStatus: fiber.StatusOK, wantRedis: "connected"},
		{name: "redis down", cache: stubPinger{err: errors.New("refused")}, wantStatus: fiber.StatusServiceUnavailable, wantRedis: "unreachable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", NewHealthHandler(db, tt.cache).HealthCheck)

			resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body struct {
				Services map[string]string `json:"services"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "connected", body.Services["database"])
			assert.Equal(t, tt.wantRedis, body.Services["redis"])
		})
	}
}
