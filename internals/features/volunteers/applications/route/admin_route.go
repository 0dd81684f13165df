package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/features/volunteers/applications/controller"
)

// ApplicationAdminRoutes mounts review endpoints under the admin group.
func ApplicationAdminRoutes(api fiber.Router, db *gorm.DB) {
	applicationCtrl := controller.NewApplicationController(db)

	applications := api.Group("/applications")
	applications.Get("/", applicationCtrl.GetApplications)
	applications.Put("/:id/review", applicationCtrl.ReviewApplication)
	applications.Put("/:id/mark-reviewed", applicationCtrl.MarkReviewed)
}
