package utils

import (
	apperrors "walet/internal/errors"

	"github.com/gofiber/fiber/v2"
)

const (
	MIMEProblemJSON    = "application/problem+json"
	MIMEMergePatchJSON = "application/merge-patch+json"

	problemWithMessageType = "https://www.jhipster.tech/problem/problem-with-message"
)

// Respond sends a JSON response with the specified status code.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Success sends a successful JSON response.
func Success(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusOK, data)
}

// Created sends a 201 JSON response with a Location header.
func Created(c *fiber.Ctx, location string, data interface{}) error {
	c.Location(location)
	return Respond(c, fiber.StatusCreated, data)
}

// NoContent sends an empty 204 response.
func NoContent(c *fiber.Ctx) error {
	c.Status(fiber.StatusNoContent)
	return nil
}

// Empty sends status with no body.
func Empty(c *fiber.Ctx, status int) error {
	c.Status(status)
	return nil
}

// BadRequest sends a JSON error response with status 400.
func BadRequest(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusBadRequest, fiber.Map{"error": message})
}

// InternalError sends a JSON error response with status 500.
func InternalError(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusInternalServerError, fiber.Map{"error": message})
}

// BadRequestAlert sends a problem+json body describing alert together with
// the failure alert headers.
func BadRequestAlert(c *fiber.Ctx, appName string, alert *apperrors.BadRequestAlertError) error {
	FailureAlert(c, appName, alert.EntityName, alert.ErrorKey)

	err := Respond(c, fiber.StatusBadRequest, fiber.Map{
		"type":       problemWithMessageType,
		"title":      alert.Message,
		"status":     fiber.StatusBadRequest,
		"entityName": alert.EntityName,
		"errorKey":   alert.ErrorKey,
		"message":    alert.MessageKey(),
		"params":     alert.EntityName,
		"path":       c.Path(),
	})
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, MIMEProblemJSON)
	return nil
}
