package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/constants"
	"agriformation_backend/internals/features/volunteers/calls/dto"
	"agriformation_backend/internals/features/volunteers/calls/model"
	helpers "agriformation_backend/internals/helpers"
)

type CallPublicController struct {
	DB *gorm.DB
}

func NewCallPublicController(db *gorm.DB) *CallPublicController {
	return &CallPublicController{DB: db}
}

// =============================
// GET /api/volunteer-calls
// =============================
// Published calls only. Unpublished calls never appear here whatever their status.
func (ctrl *CallPublicController) ListPublished(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "event_date", "asc", helpers.DefaultOpts)

	q := ctrl.DB.Model(&model.CallModel{}).Where("call_is_published = ?", true)
	if category := c.Query("category"); category != "" {
		if !constants.IsValidCallCategory(category) {
			return helpers.Error(c, fiber.StatusBadRequest, "Unknown call category")
		}
		q = q.Where("call_category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to count calls")
	}

	order, err := p.OrderExpr(map[string]string{
		"event_date": "call_event_date",
		"deadline":   "call_deadline",
		"created_at": "call_created_at",
	}, "event_date")
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid sort key")
	}

	var calls []model.CallModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&calls).Error; err != nil {
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
// GET /api/volunteer-calls/:id
// =============================
// Each public detail fetch bumps the view counter.
func (ctrl *CallPublicController) GetPublished(c *fiber.Ctx) error {
	var call model.CallModel
	err := ctrl.DB.First(&call, "call_id = ? AND call_is_published = ?", c.Params("id"), true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Call not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if err := ctrl.DB.Model(&call).
		UpdateColumn("call_view_count", gorm.Expr("call_view_count + 1")).Error; err == nil {
		call.CallViewCount++
	}

	return helpers.Success(c, "OK", fiber.Map{"call": dto.ToCallDTO(call, time.Now(), false)})
}

// =============================
// POST /api/volunteer-calls/:id/apply
// =============================
// Accepted only while the call is published and effectively open.
func (ctrl *CallPublicController) Apply(c *fiber.Ctx) error {
	var body dto.CallApplyRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCall.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	var call model.CallModel
	err := ctrl.DB.First(&call, "call_id = ? AND call_is_published = ?", c.Params("id"), true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Call not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if !call.IsAcceptingApplications(time.Now()) {
		return helpers.Error(c, fiber.StatusConflict, "This call is no longer accepting applications")
	}

	application := model.CallApplicationModel{
		CallApplicationCallID:      call.CallID,
		CallApplicationFullName:    body.FullName,
		CallApplicationEmail:       body.Email,
		CallApplicationPhoneNumber: body.PhoneNumber,
		CallApplicationMessage:     body.Message,
		CallApplicationStatus:      model.CallApplicationPending,
	}
	if err := ctrl.DB.Create(&application).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to submit application")
	}

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Application submitted", fiber.Map{
		"application": dto.ToCallApplicationDTO(application),
	})
}
