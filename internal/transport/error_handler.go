package transport

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/optimusdesign/booking-api/internal/domain"
	"go.uber.org/zap"
)

const genericServerMessage = "Failed to process request. Please try again."

// ErrorHandler maps pipeline errors to HTTP responses. Validation failures
// come back as 422 with field detail; anything unexpected becomes a generic
// 500 so internal error text never reaches the client.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := genericServerMessage
		var fields []domain.FieldError

		var verr *domain.ValidationError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &verr):
			code = fiber.StatusUnprocessableEntity
			message = "Validation failed"
			fields = verr.Fields
		case errors.Is(err, domain.ErrValidation):
			code = fiber.StatusUnprocessableEntity
			message = err.Error()
		case errors.Is(err, domain.ErrNotFound):
			code = fiber.StatusNotFound
			message = "Not found"
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
		}

		logFn := logger.Warn
		if code >= fiber.StatusInternalServerError {
			logFn = logger.Error
		}
		logFn("request error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		body := fiber.Map{
			"status":  "error",
			"message": message,
		}
		if len(fields) > 0 {
			body["errors"] = fields
		}

		return c.Status(code).JSON(body)
	}
}
