package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/features/volunteers/volunteer/dto"
	"agriformation_backend/internals/features/volunteers/volunteer/model"
	helpers "agriformation_backend/internals/helpers"
	authMW "agriformation_backend/internals/middlewares/auth"
)

var validateVolunteer = validator.New()

type VolunteerAdminController struct {
	DB *gorm.DB
}

func NewVolunteerAdminController(db *gorm.DB) *VolunteerAdminController {
	return &VolunteerAdminController{DB: db}
}

// =============================
// GET /api/admin/volunteers
// =============================
func (ctrl *VolunteerAdminController) GetAllVolunteers(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := ctrl.DB.Model(&model.VolunteerModel{})
	if status := c.Query("status"); status != "" {
		if !model.IsValidStatus(status) {
			return helpers.Error(c, fiber.StatusBadRequest, "Unknown volunteer status")
		}
		q = q.Where("volunteer_status = ?", status)
	}
	if role := c.Query("role"); role != "" {
		q = q.Where("volunteer_preferred_role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to count volunteers")
	}

	order, err := p.OrderExpr(map[string]string{
		"created_at": "volunteer_created_at",
		"status":     "volunteer_status",
		"hours":      "volunteer_hours",
	}, "created_at")
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid sort key")
	}

	var volunteers []model.VolunteerModel
	if err := q.Preload("Programs").Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&volunteers).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to retrieve volunteers")
	}

	items := make([]dto.VolunteerDTO, 0, len(volunteers))
	for _, v := range volunteers {
		items = append(items, dto.ToVolunteerDTO(v))
	}

	return helpers.Success(c, "OK", fiber.Map{
		"items": items,
		"meta":  helpers.BuildMeta(total, p),
	})
}

// =============================
// GET /api/admin/volunteers/:id
// =============================
func (ctrl *VolunteerAdminController) GetVolunteerDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	var volunteer model.VolunteerModel
	if err := ctrl.DB.Preload("Programs").First(&volunteer, "volunteer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Volunteer not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helpers.Success(c, "OK", fiber.Map{"volunteer": dto.ToVolunteerDTO(volunteer)})
}

// =============================
// PUT /api/admin/volunteers/:id/status
// =============================
func (ctrl *VolunteerAdminController) UpdateVolunteerStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateVolunteerStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateVolunteer.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	var volunteer model.VolunteerModel
	if err := ctrl.DB.Preload("Programs").First(&volunteer, "volunteer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Volunteer not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if body.Status != volunteer.VolunteerStatus && !model.CanTransition(volunteer.VolunteerStatus, body.Status) {
		return helpers.Error(c, fiber.StatusConflict, "Status transition not allowed")
	}

	adminID, err := authMW.UserIDFromLocals(c)
	if err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	now := time.Now()
	volunteer.VolunteerStatus = body.Status
	volunteer.VolunteerReviewedBy = &adminID
	volunteer.VolunteerReviewedAt = &now
	if body.Notes != "" {
		volunteer.VolunteerReviewNotes = &body.Notes
	}

	if err := ctrl.DB.Save(&volunteer).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update volunteer status")
	}

	return helpers.Success(c, "Volunteer status updated", fiber.Map{"volunteer": dto.ToVolunteerDTO(volunteer)})
}

// =============================
// POST /api/admin/volunteers/:id/assign
// =============================
// Appends a program assignment; allowed regardless of volunteer status.
func (ctrl *VolunteerAdminController) AssignProgram(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.AssignProgramRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateVolunteer.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}
	if body.EndDate != nil && !body.EndDate.After(body.StartDate) {
		return helpers.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", fiber.Map{
			"end_date": "must be after start_date",
		})
	}

	var volunteer model.VolunteerModel
	if err := ctrl.DB.First(&volunteer, "volunteer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Volunteer not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	program := model.ProgramModel{
		ProgramVolunteerID: volunteer.VolunteerID,
		ProgramName:        body.ProgramName,
		ProgramRole:        body.Role,
		ProgramStartDate:   body.StartDate,
		ProgramEndDate:     body.EndDate,
		ProgramStatus:      model.ProgramActive,
	}
	if err := ctrl.DB.Create(&program).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to assign program")
	}

	if err := ctrl.DB.Preload("Programs").First(&volunteer, "volunteer_id = ?", id).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Program assigned", fiber.Map{
		"volunteer": dto.ToVolunteerDTO(volunteer),
	})
}

// =============================
// PUT /api/admin/volunteers/:id/programs/:programId/status
// =============================
func (ctrl *VolunteerAdminController) UpdateProgramStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	programID := c.Params("programId")

	var body dto.UpdateProgramStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateVolunteer.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	var program model.ProgramModel
	if err := ctrl.DB.First(&program, "program_id = ? AND program_volunteer_id = ?", programID, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Program not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if !model.CanTransitionProgram(program.ProgramStatus, body.Status) {
		return helpers.Error(c, fiber.StatusConflict,
			"Program cannot move from "+program.ProgramStatus+" to "+body.Status)
	}

	program.ProgramStatus = body.Status
	if err := ctrl.DB.Save(&program).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update program status")
	}

	return helpers.Success(c, "Program status updated", fiber.Map{"program": dto.ToProgramDTO(program)})
}

// =============================
// PUT /api/admin/volunteers/:id/hours
// =============================
// Hours only ever go up.
func (ctrl *VolunteerAdminController) UpdateHours(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateHoursRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateVolunteer.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	var volunteer model.VolunteerModel
	if err := ctrl.DB.First(&volunteer, "volunteer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Volunteer not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if err := model.ValidateHoursUpdate(volunteer.VolunteerHours, body.Hours); err != nil {
		return helpers.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", fiber.Map{
			"hours_contributed": err.Error(),
		})
	}

	volunteer.VolunteerHours = body.Hours
	if err := ctrl.DB.Model(&volunteer).UpdateColumn("volunteer_hours", body.Hours).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update hours")
	}

	return helpers.Success(c, "Hours updated", fiber.Map{"volunteer": dto.ToVolunteerDTO(volunteer)})
}
