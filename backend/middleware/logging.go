package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// LoggingMiddleware logs method, path, status and latency for each request.
func LoggingMiddleware(logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Printf("%s %s -> %d (%s)",
			c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
		return err
	}
}
