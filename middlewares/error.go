package middlewares

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"sushitrack-backend/billing"
)

// ErrorHandler centralizes error responses and keeps messages sanitized.
// The billing taxonomy maps onto HTTP statuses here; the engine itself never
// retries or translates.
func ErrorHandler(c *fiber.Ctx, err error) error {
	// 1) Fiber errors (use their status code + message)
	if fe, ok := err.(*fiber.Error); ok {
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	}

	// 2) Validation errors (422 + per-field info)
	if ve, ok := err.(validator.ValidationErrors); ok {
		out := make(map[string]string, len(ve))
		for _, fe := range ve {
			out[fe.Field()] = fe.Tag()
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "validation failed",
			"errors":  out,
		})
	}

	// 3) Billing engine taxonomy
	switch {
	case errors.Is(err, billing.ErrInvalidRange), errors.Is(err, billing.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, billing.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, billing.ErrIntegrityViolation):
		logrus.WithError(err).Error("ledger integrity violation")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "data integrity error"})
	}
	var pe *billing.PersistenceError
	if errors.As(err, &pe) {
		logrus.WithError(err).Error("persistence failure")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "storage error"})
	}

	// 4) Unknown errors (500)
	logrus.WithError(err).Error("internal error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "internal server error",
	})
}
