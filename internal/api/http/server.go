package http

import "github.com/gofiber/fiber/v2"

// NewApp builds the fiber app. Immutable is required: path params, queries and bodies are
// stored as registry ids and must not alias fiber's reused request buffers.
func NewApp(name string) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:   name,
		Immutable: true,
	})
}
