package utils

import (
	fiber "github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/testprep-api/database"
)

// MakeHTTPHandleFunc adapts a store-aware handler into a fiber.Handler,
// mapping unexpected failures to a generic error response.
func MakeHTTPHandleFunc(handler func(c *fiber.Ctx, store database.Storage) error, store database.Storage) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		if err := handler(c, store); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
		}
		return nil
	}
}
