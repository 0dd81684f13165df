package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/features/volunteers/volunteer/dto"
	"agriformation_backend/internals/features/volunteers/volunteer/model"
	helpers "agriformation_backend/internals/helpers"
	authMW "agriformation_backend/internals/middlewares/auth"
)

// VolunteerProfileController serves the volunteer's own profile.
type VolunteerProfileController struct {
	DB *gorm.DB
}

func NewVolunteerProfileController(db *gorm.DB) *VolunteerProfileController {
	return &VolunteerProfileController{DB: db}
}

// loadOrCreate returns the caller's profile, creating an empty pending one on
// first access so a freshly registered volunteer always has a profile row.
func (ctrl *VolunteerProfileController) loadOrCreate(c *fiber.Ctx) (*model.VolunteerModel, error) {
	userID, err := authMW.UserIDFromLocals(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var volunteer model.VolunteerModel
	err = ctrl.DB.Preload("Programs").
		Where(model.VolunteerModel{VolunteerUserID: userID}).
		Attrs(model.VolunteerModel{VolunteerStatus: model.StatusPending}).
		FirstOrCreate(&volunteer).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load profile")
	}
	return &volunteer, nil
}

// =============================
// GET /api/volunteers/profile
// =============================
func (ctrl *VolunteerProfileController) GetProfile(c *fiber.Ctx) error {
	volunteer, err := ctrl.loadOrCreate(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.Success(c, "OK", fiber.Map{"volunteer": dto.ToVolunteerDTO(*volunteer)})
}

// =============================
// PUT /api/volunteers/profile
// =============================
// Volunteer-editable fields only; status, hours and review fields stay admin-owned.
func (ctrl *VolunteerProfileController) UpdateProfile(c *fiber.Ctx) error {
	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateVolunteer.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	volunteer, err := ctrl.loadOrCreate(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	if body.PreferredRole != "" {
		volunteer.VolunteerPreferredRole = body.PreferredRole
	}
	if body.About != "" {
		volunteer.VolunteerAbout = body.About
	}
	if body.Skills != nil {
		volunteer.VolunteerSkills = body.Skills
	}
	if body.Availability != "" {
		volunteer.VolunteerAvailability = &body.Availability
	}
	if body.LocationState != "" {
		volunteer.VolunteerLocationState = &body.LocationState
	}
	if body.LocationLGA != "" {
		volunteer.VolunteerLocationLGA = &body.LocationLGA
	}

	if err := ctrl.DB.Save(volunteer).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return helpers.Success(c, "Profile updated", fiber.Map{"volunteer": dto.ToVolunteerDTO(*volunteer)})
}
