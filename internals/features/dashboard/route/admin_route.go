package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/features/dashboard/controller"
)

// DashboardRoutes mounts the admin dashboard endpoints.
func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	dashboardCtrl := controller.NewDashboardController(db)

	api.Get("/dashboard/stats", dashboardCtrl.GetStats)
}
