package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/features/volunteers/applications/dto"
	"agriformation_backend/internals/features/volunteers/applications/model"
	helpers "agriformation_backend/internals/helpers"
	authMW "agriformation_backend/internals/middlewares/auth"
)

var validateApplication = validator.New()

type ApplicationController struct {
	DB *gorm.DB
}

func NewApplicationController(db *gorm.DB) *ApplicationController {
	return &ApplicationController{DB: db}
}

// =============================
// POST /api/volunteers/apply (public)
// =============================
func (ctrl *ApplicationController) Apply(c *fiber.Ctx) error {
	var body dto.ApplyRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateApplication.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	application := model.ApplicationModel{
		ApplicationFullName:      body.FullName,
		ApplicationEmail:         body.Email,
		ApplicationPreferredRole: body.PreferredRole,
		ApplicationAbout:         body.About,
		ApplicationStatus:        model.StatusPending,
	}

	if err := ctrl.DB.Create(&application).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to submit application")
	}

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Application submitted", fiber.Map{
		"application": dto.ToApplicationDTO(application),
	})
}

// =============================
// GET /api/admin/applications
// =============================
func (ctrl *ApplicationController) GetApplications(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := ctrl.DB.Model(&model.ApplicationModel{})
	if status := c.Query("status"); status != "" {
		if !model.IsValidStatus(status) {
			return helpers.Error(c, fiber.StatusBadRequest, "Unknown application status")
		}
		q = q.Where("application_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to count applications")
	}

	order, err := p.OrderExpr(map[string]string{
		"created_at": "application_created_at",
		"status":     "application_status",
	}, "created_at")
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid sort key")
	}

	var applications []model.ApplicationModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&applications).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to retrieve applications")
	}

	items := make([]dto.ApplicationDTO, 0, len(applications))
	for _, a := range applications {
		items = append(items, dto.ToApplicationDTO(a))
	}

	return helpers.Success(c, "OK", fiber.Map{
		"items": items,
		"meta":  helpers.BuildMeta(total, p),
	})
}

// =============================
// PUT /api/admin/applications/:id/review
// =============================
// Accept or reject; only reachable from pending or reviewed.
func (ctrl *ApplicationController) ReviewApplication(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.ReviewApplicationRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateApplication.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	var application model.ApplicationModel
	if err := ctrl.DB.First(&application, "application_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Application not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if !model.CanTransition(application.ApplicationStatus, body.Status) {
		return helpers.Error(c, fiber.StatusConflict,
			"Application is already "+application.ApplicationStatus+" and cannot be reviewed again")
	}

	adminID, err := authMW.UserIDFromLocals(c)
	if err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	now := time.Now()
	application.ApplicationStatus = body.Status
	application.ApplicationProcessedBy = &adminID
	application.ApplicationProcessedAt = &now
	if body.Notes != "" {
		application.ApplicationNotes = &body.Notes
	}

	if err := ctrl.DB.Save(&application).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to review application")
	}

	return helpers.Success(c, "Application "+body.Status, fiber.Map{
		"application": dto.ToApplicationDTO(application),
	})
}

// =============================
// PUT /api/admin/applications/:id/mark-reviewed
// =============================
// Milestone state between pending and a final decision.
func (ctrl *ApplicationController) MarkReviewed(c *fiber.Ctx) error {
	id := c.Params("id")

	var application model.ApplicationModel
	if err := ctrl.DB.First(&application, "application_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Application not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if !model.CanTransition(application.ApplicationStatus, model.StatusReviewed) {
		return helpers.Error(c, fiber.StatusConflict, "Only a pending application can be marked reviewed")
	}

	adminID, err := authMW.UserIDFromLocals(c)
	if err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	now := time.Now()
	application.ApplicationStatus = model.StatusReviewed
	application.ApplicationProcessedBy = &adminID
	application.ApplicationProcessedAt = &now

	if err := ctrl.DB.Save(&application).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update application")
	}

	return helpers.Success(c, "Application marked reviewed", fiber.Map{
		"application": dto.ToApplicationDTO(application),
	})
}
