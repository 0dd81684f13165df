package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/features/volunteers/calls/controller"
	"agriformation_backend/internals/middlewares"
)

// CallPublicRoutes mounts the public listing and apply endpoints.
func CallPublicRoutes(app fiber.Router, db *gorm.DB) {
	callCtrl := controller.NewCallPublicController(db)

	calls := app.Group("/api/volunteer-calls")
	calls.Get("/", callCtrl.ListPublished)
	calls.Get("/:id", callCtrl.GetPublished)
	calls.Post("/:id/apply", middlewares.ApplyRateLimiter(), callCtrl.Apply)
}
