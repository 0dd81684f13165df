package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/constants"
	"agriformation_backend/internals/features/volunteers/calls/dto"
	"agriformation_backend/internals/features/volunteers/calls/model"
	helpers "agriformation_backend/internals/helpers"
)

var validateCall = validator.New()

type CallAdminController struct {
	DB *gorm.DB
}

func NewCallAdminController(db *gorm.DB) *CallAdminController {
	return &CallAdminController{DB: db}
}

// =============================
// GET /api/admin/volunteer-calls
// =============================
func (ctrl *CallAdminController) GetAllCalls(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := ctrl.DB.Model(&model.CallModel{})
	if status := c.Query("status"); status != "" {
		if !model.IsValidCallStatus(status) {
			return helpers.Error(c, fiber.StatusBadRequest, "Unknown call status")
		}
		q = q.Where("call_status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		if !constants.IsValidCallCategory(category) {
			return helpers.Error(c, fiber.StatusBadRequest, "Unknown call category")
		}
		q = q.Where("call_category = ?", category)
	}
	if published := c.Query("is_published"); published != "" {
		q = q.Where("call_is_published = ?", published == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to count calls")
	}

	order, err := p.OrderExpr(map[string]string{
		"created_at": "call_created_at",
		"event_date": "call_event_date",
		"deadline":   "call_deadline",
		"title":      "call_title",
	}, "created_at")
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid sort key")
	}

	var calls []model.CallModel
	if err := q.Preload("Applications").Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&calls).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to retrieve calls")
	}

	now := time.Now()
	items := make([]dto.CallDTO, 0, len(calls))
	for _, call := range calls {
		items = append(items, dto.ToCallDTO(call, now, false))
	}

	return helpers.Success(c, "OK", fiber.Map{
		"items": items,
		"meta":  helpers.BuildMeta(total, p),
	})
}

// =============================
// POST /api/admin/volunteer-calls
// =============================
func (ctrl *CallAdminController) CreateCall(c *fiber.Ctx) error {
	var body dto.CreateCallRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCall.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}
	if err := model.ValidateSchedule(body.Deadline, body.EventDate); err != nil {
		return helpers.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", fiber.Map{
			"deadline": err.Error(),
		})
	}

	call := model.CallModel{
		CallTitle:            body.Title,
		CallDescription:      body.Description,
		CallRequirements:     body.Requirements,
		CallEventDate:        body.EventDate,
		CallDeadline:         body.Deadline,
		CallLocation:         body.Location,
		CallVolunteersNeeded: body.NumberOfVolunteers,
		CallCategory:         body.Category,
		CallStatus:           model.CallStatusDraft,
	}
	if err := ctrl.DB.Create(&call).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to create call")
	}

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Call created", fiber.Map{
		"call": dto.ToCallDTO(call, time.Now(), true),
	})
}

// =============================
// GET /api/admin/volunteer-calls/:id
// =============================
func (ctrl *CallAdminController) GetCallDetails(c *fiber.Ctx) error {
	call, err := ctrl.findCall(c.Params("id"), true)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.Success(c, "OK", fiber.Map{"call": dto.ToCallDTO(*call, time.Now(), true)})
}

// =============================
// PUT /api/admin/volunteer-calls/:id
// =============================
// Partial update. The schedule invariant is re-checked against the merged
// deadline and event date, not only the fields in the request.
func (ctrl *CallAdminController) UpdateCall(c *fiber.Ctx) error {
	var body dto.UpdateCallRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCall.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	call, err := ctrl.findCall(c.Params("id"), false)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	deadline := call.CallDeadline
	eventDate := call.CallEventDate
	if body.Deadline != nil {
		deadline = *body.Deadline
	}
	if body.EventDate != nil {
		eventDate = *body.EventDate
	}
	if err := model.ValidateSchedule(deadline, eventDate); err != nil {
		return helpers.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", fiber.Map{
			"deadline": err.Error(),
		})
	}

	if body.Title != nil {
		call.CallTitle = *body.Title
	}
	if body.Description != nil {
		call.CallDescription = *body.Description
	}
	if body.Requirements != nil {
		call.CallRequirements = *body.Requirements
	}
	call.CallDeadline = deadline
	call.CallEventDate = eventDate
	if body.Location != nil {
		call.CallLocation = *body.Location
	}
	if body.NumberOfVolunteers != nil {
		call.CallVolunteersNeeded = *body.NumberOfVolunteers
	}
	if body.Category != nil {
		call.CallCategory = *body.Category
	}

	if err := ctrl.DB.Save(call).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update call")
	}

	return helpers.Success(c, "Call updated", fiber.Map{"call": dto.ToCallDTO(*call, time.Now(), true)})
}

// =============================
// DELETE /api/admin/volunteer-calls/:id
// =============================
func (ctrl *CallAdminController) DeleteCall(c *fiber.Ctx) error {
	call, err := ctrl.findCall(c.Params("id"), false)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("call_application_call_id = ?", call.CallID).
			Delete(&model.CallApplicationModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(call).Error
	})
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to delete call")
	}

	if call.CallDesignImageKey != nil {
		if err := helpers.DeleteImage(*call.CallDesignImageKey); err != nil {
			log.Printf("[WARN] failed to delete design image %s: %v", *call.CallDesignImageKey, err)
		}
	}

	return helpers.Success(c, "Call deleted", fiber.Map{"id": call.CallID.String()})
}

// =============================
// PUT /api/admin/volunteer-calls/:id/publish
// =============================
// Publishing never touches call_status.
func (ctrl *CallAdminController) PublishCall(c *fiber.Ctx) error {
	var body dto.PublishCallRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	call, err := ctrl.findCall(c.Params("id"), false)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	call.CallIsPublished = body.IsPublished
	if err := ctrl.DB.Model(call).UpdateColumn("call_is_published", body.IsPublished).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update publish state")
	}

	return helpers.Success(c, "Publish state updated", fiber.Map{"call": dto.ToCallDTO(*call, time.Now(), false)})
}

// =============================
// PUT /api/admin/volunteer-calls/:id/status
// =============================
// Admins set the stored status freely; no forward-only ordering is imposed.
func (ctrl *CallAdminController) UpdateCallStatus(c *fiber.Ctx) error {
	var body dto.UpdateCallStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCall.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	call, err := ctrl.findCall(c.Params("id"), false)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	call.CallStatus = body.Status
	if err := ctrl.DB.Model(call).UpdateColumn("call_status", body.Status).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update call status")
	}

	return helpers.Success(c, "Call status updated", fiber.Map{"call": dto.ToCallDTO(*call, time.Now(), false)})
}

// =============================
// PUT /api/admin/volunteer-calls/:id/design-image
// =============================
// Multipart upload, field "design_image". Replaces and removes any previous image.
func (ctrl *CallAdminController) UploadDesignImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("design_image")
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "design_image file is required")
	}
	if err := helpers.ValidateImageUpload(fh); err != nil {
		return helpers.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", fiber.Map{
			"design_image": err.Error(),
		})
	}

	call, err := ctrl.findCall(c.Params("id"), false)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	url, key, err := helpers.UploadImage("volunteer-calls", fh)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to upload design image")
	}

	oldKey := call.CallDesignImageKey
	call.CallDesignImageURL = &url
	call.CallDesignImageKey = &key
	if err := ctrl.DB.Model(call).Updates(map[string]interface{}{
		"call_design_image_url": url,
		"call_design_image_key": key,
	}).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to save design image")
	}

	if oldKey != nil && *oldKey != key {
		if err := helpers.DeleteImage(*oldKey); err != nil {
			log.Printf("[WARN] failed to delete old design image %s: %v", *oldKey, err)
		}
	}

	return helpers.Success(c, "Design image updated", fiber.Map{"call": dto.ToCallDTO(*call, time.Now(), false)})
}

// =============================
// PUT /api/admin/volunteer-calls/:id/applications/:appId
// =============================
// Call applications are re-reviewable, so any valid status may be assigned.
func (ctrl *CallAdminController) UpdateApplicationStatus(c *fiber.Ctx) error {
	var body dto.UpdateCallApplicationRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCall.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	var application model.CallApplicationModel
	err := ctrl.DB.First(&application,
		"call_application_id = ? AND call_application_call_id = ?",
		c.Params("appId"), c.Params("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Application not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	application.CallApplicationStatus = body.Status
	if err := ctrl.DB.Model(&application).
		UpdateColumn("call_application_status", body.Status).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update application status")
	}

	return helpers.Success(c, "Application status updated", fiber.Map{
		"application": dto.ToCallApplicationDTO(application),
	})
}

// =============================
// GET /api/admin/volunteer-calls/stats
// =============================
func (ctrl *CallAdminController) GetStats(c *fiber.Ctx) error {
	var totalCalls, publishedCalls, openCalls, totalApplications, pendingApplications int64

	if err := ctrl.DB.Model(&model.CallModel{}).Count(&totalCalls).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	ctrl.DB.Model(&model.CallModel{}).Where("call_is_published = ?", true).Count(&publishedCalls)
	ctrl.DB.Model(&model.CallModel{}).
		Where("call_status = ? AND call_deadline > ?", model.CallStatusOpen, time.Now()).
		Count(&openCalls)
	ctrl.DB.Model(&model.CallApplicationModel{}).Count(&totalApplications)
	ctrl.DB.Model(&model.CallApplicationModel{}).
		Where("call_application_status = ?", model.CallApplicationPending).
		Count(&pendingApplications)

	return helpers.Success(c, "OK", fiber.Map{
		"total_calls":          totalCalls,
		"published_calls":      publishedCalls,
		"open_calls":           openCalls,
		"total_applications":   totalApplications,
		"pending_applications": pendingApplications,
	})
}

func (ctrl *CallAdminController) findCall(id string, withApplications bool) (*model.CallModel, error) {
	q := ctrl.DB
	if withApplications {
		q = q.Preload("Applications")
	}

	var call model.CallModel
	if err := q.First(&call, "call_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Call not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}
	return &call, nil
}
