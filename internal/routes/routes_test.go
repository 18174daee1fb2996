package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"walet/internal/config"
	"walet/internal/models"
	"walet/internal/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, repositories.Migrate(db))

	app := fiber.New()
	SetupRoutes(app, Dependencies{
		Config:   config.Config{AppName: "waletApi"},
		DB:       db,
		Registry: prometheus.NewRegistry(),
	})
	return app
}

func send(t *testing.T, app *fiber.App, method, path, contentType string, body interface{}) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestCreateThenPatchScenario(t *testing.T) {
	app := newApp(t)

	status, body := send(t, app, fiber.MethodPost, "/api/walets", fiber.MIMEApplicationJSON, map[string]interface{}{
		"idCLient": 1, "login": "AAAAAAAAAA", "password": "AAAAAAAAAA",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var created models.Walet
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotNil(t, created.ID)
	assert.Equal(t, "AAAAAAAAAA", *created.Login)

	path := fmt.Sprintf("/api/walets/%d", *created.ID)
	status, _ = send(t, app, fiber.MethodPatch, path, "application/merge-patch+json", map[string]interface{}{
		"id": *created.ID, "idCLient": 2, "login": "BBBBBBBBBB", "password": "BBBBBBBBBB",
	})
	require.Equal(t, fiber.StatusOK, status)

	status, body = send(t, app, fiber.MethodGet, path, "", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"idCLient":2,"login":"BBBBBBBBBB","password":"BBBBBBBBBB"}`, *created.ID), string(body))

	status, body = send(t, app, fiber.MethodGet, "/api/walets", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	var all []models.Walet
	require.NoError(t, json.Unmarshal(body, &all))
	assert.Len(t, all, 1)
}

func TestHealthAndMetricsRoutes(t *testing.T) {
	app := newApp(t)

	status, _ := send(t, app, fiber.MethodGet, "/api/walets/1", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = send(t, app, fiber.MethodGet, "/health", "", nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, body := send(t, app, fiber.MethodGet, "/metrics", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), "walet_service_operations_total")
}
