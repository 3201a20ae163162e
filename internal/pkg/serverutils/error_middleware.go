package serverutils

import (
	"errors"

	"travel-agency-be/internal/pkg/logger"
	"travel-agency-be/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors bubbling out of handlers into the
// JSON envelope: validation failures become 422 with a field map, fiber
// errors keep their status, anything else is a 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if verr, ok := validation.AsValidationError(err); ok {
			return ctx.Status(fiber.StatusUnprocessableEntity).
				JSON(ValidationErrorResponse("Validation failed", verr.Fields))
		}

		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			return ctx.Status(ferr.Code).JSON(ErrorResponse(ferr.Code, ferr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"error":  err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(500, "Internal server error"))
	}
}
