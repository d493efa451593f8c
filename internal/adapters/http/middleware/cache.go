package middleware

import "github.com/gofiber/fiber/v2"

// NoStore marks responses as non-cacheable. The ledger views depend on
// per-request authorization, so no intermediary may serve them from cache.
func NoStore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		c.Set("Cache-Control", "no-store")
		return err
	}
}
