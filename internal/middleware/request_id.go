// Package middleware provides HTTP middleware components for the application.
package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestID reuses the incoming X-Request-ID or generates a UUID, stores it
// in the request locals and echoes it back on the response.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDHeader, requestID)
		return c.Next()
	}
}

// GetRequestID returns the request id or "" when RequestID did not run.
func GetRequestID(c *fiber.Ctx) string {
	if requestID, ok := c.Locals(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
