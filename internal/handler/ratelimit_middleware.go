package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/optimusdesign/booking-api/internal/ratelimit"
	"go.uber.org/zap"
)

// SubmitRateLimit bounds booking submissions per client IP. Limiter errors
// fail open: a degraded Redis must not block legitimate bookings.
func SubmitRateLimit(limiter ratelimit.RateLimiter, logger *zap.Logger) fiber.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *fiber.Ctx) error {
		if limiter == nil {
			return c.Next()
		}

		allowed, err := limiter.Allow(c.Context(), c.IP())
		if err != nil {
			logger.Warn("rate limiter unavailable, allowing request",
				zap.String("clientIp", c.IP()),
				zap.Error(err),
			)
			return c.Next()
		}
		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status":  "error",
				"message": "Too many requests. Please try again in a minute.",
			})
		}

		return c.Next()
	}
}
