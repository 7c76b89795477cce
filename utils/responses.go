package utils

import (
	"github.com/gofiber/fiber/v2"

	"lms/apperr"
)

// Error writes the JSON error body for err, mapping taxonomy kinds onto
// HTTP statuses. Unknown errors become a 500 without leaking detail.
func Error(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Server error"

	switch apperr.KindOf(err) {
	case apperr.Unauthenticated:
		status, message = fiber.StatusUnauthorized, err.Error()
	case apperr.Forbidden:
		status, message = fiber.StatusForbidden, err.Error()
	case apperr.NotFound:
		status, message = fiber.StatusNotFound, err.Error()
	case apperr.InvalidInput:
		status, message = fiber.StatusBadRequest, err.Error()
	case apperr.Unavailable:
		status, message = fiber.StatusServiceUnavailable, "Storage temporarily unavailable, retry later"
	}

	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

func ValidationError(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "Validation failed",
		"fields": errors,
	})
}
