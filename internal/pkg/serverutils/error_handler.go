package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kilhoshin/aissam/internal/pkg/logger"
)

// ErrorHandlerMiddleware converts errors bubbled out of controllers into JSON
// responses. Typed APIErrors keep their status; everything else is a 500.
func ErrorHandlerMiddleware(sysLogger logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return ctx.Status(apiErr.Code).JSON(fiber.Map{"message": apiErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}

		sysLogger.Error("http", "unhandled request error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
	}
}
