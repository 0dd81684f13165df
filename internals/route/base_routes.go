package route

import (
	"time"

	"github.com/gofiber/fiber/v2"

	helpers "agriformation_backend/internals/helpers"
)

var startedAt = time.Now()

// BaseRoutes registers the welcome and liveness endpoints.
func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return helpers.Success(c, "Agriformation API", fiber.Map{
			"docs": "/api",
		})
	})

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return helpers.Success(c, "OK", fiber.Map{
			"uptime": time.Since(startedAt).String(),
			"time":   time.Now().UTC(),
		})
	})
}
