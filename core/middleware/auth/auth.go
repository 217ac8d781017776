package auth

import "github.com/gofiber/fiber/v2"

// Config holds configuration for the auth middleware.
type Config struct {
	// ApiKey is the expected value of the x-api-key header.
	// Empty disables authentication entirely.
	ApiKey string
	// Next skips the middleware for a request when it returns true.
	// Used for endpoints third parties must reach without credentials,
	// like provider webhooks.
	Next func(c *fiber.Ctx) bool
}

// New creates a middleware that validates the x-api-key header.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}
		if cfg.ApiKey == "" {
			return c.Next()
		}
		if c.Get("x-api-key") != cfg.ApiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing api key",
			})
		}
		return c.Next()
	}
}
