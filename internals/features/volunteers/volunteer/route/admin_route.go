package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/features/volunteers/volunteer/controller"
)

// VolunteerAdminRoutes mounts volunteer management under the admin group.
func VolunteerAdminRoutes(api fiber.Router, db *gorm.DB) {
	volunteerCtrl := controller.NewVolunteerAdminController(db)

	volunteers := api.Group("/volunteers")
	volunteers.Get("/", volunteerCtrl.GetAllVolunteers)
	volunteers.Get("/:id", volunteerCtrl.GetVolunteerDetails)
	volunteers.Put("/:id/status", volunteerCtrl.UpdateVolunteerStatus)
	volunteers.Post("/:id/assign", volunteerCtrl.AssignProgram)
	volunteers.Put("/:id/programs/:programId/status", volunteerCtrl.UpdateProgramStatus)
	volunteers.Put("/:id/hours", volunteerCtrl.UpdateHours)
}
