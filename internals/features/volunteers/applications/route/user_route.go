package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/features/volunteers/applications/controller"
	"agriformation_backend/internals/middlewares"
)

// ApplicationPublicRoutes mounts the public apply endpoint.
func ApplicationPublicRoutes(app *fiber.App, db *gorm.DB) {
	applicationCtrl := controller.NewApplicationController(db)

	app.Post("/api/volunteers/apply", middlewares.ApplyRateLimiter(), applicationCtrl.Apply)
}
