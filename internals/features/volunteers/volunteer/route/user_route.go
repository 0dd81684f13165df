package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/features/volunteers/volunteer/controller"
)

// VolunteerProfileRoutes mounts the volunteer's own profile endpoints.
func VolunteerProfileRoutes(api fiber.Router, db *gorm.DB) {
	profileCtrl := controller.NewVolunteerProfileController(db)

	api.Get("/profile", profileCtrl.GetProfile)
	api.Put("/profile", profileCtrl.UpdateProfile)
}
