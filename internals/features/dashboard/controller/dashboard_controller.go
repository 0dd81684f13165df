package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	applicationDTO "agriformation_backend/internals/features/volunteers/applications/dto"
	applicationModel "agriformation_backend/internals/features/volunteers/applications/model"
	volunteerModel "agriformation_backend/internals/features/volunteers/volunteer/model"
	helpers "agriformation_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

const recentApplicationsLimit = 5

// =============================
// GET /api/admin/dashboard/stats
// =============================
func (ctrl *DashboardController) GetStats(c *fiber.Ctx) error {
	var totalVolunteers, activeVolunteers, pendingApplications int64
	var totalHours int64

	if err := ctrl.DB.Model(&volunteerModel.VolunteerModel{}).Count(&totalVolunteers).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	ctrl.DB.Model(&volunteerModel.VolunteerModel{}).
		Where("volunteer_status = ?", volunteerModel.StatusApproved).
		Count(&activeVolunteers)
	ctrl.DB.Model(&applicationModel.ApplicationModel{}).
		Where("application_status = ?", applicationModel.StatusPending).
		Count(&pendingApplications)
	ctrl.DB.Model(&volunteerModel.VolunteerModel{}).
		Select("COALESCE(SUM(volunteer_hours), 0)").Scan(&totalHours)

	var recent []applicationModel.ApplicationModel
	ctrl.DB.Order("application_created_at DESC").Limit(recentApplicationsLimit).Find(&recent)

	recentItems := make([]applicationDTO.ApplicationDTO, 0, len(recent))
	for _, app := range recent {
		recentItems = append(recentItems, applicationDTO.ToApplicationDTO(app))
	}

	return helpers.Success(c, "OK", fiber.Map{
		"total_volunteers":        totalVolunteers,
		"active_volunteers":       activeVolunteers,
		"pending_applications":    pendingApplications,
		"total_hours_contributed": totalHours,
		"recent_applications":     recentItems,
	})
}
