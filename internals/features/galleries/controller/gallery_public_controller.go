package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/constants"
	"agriformation_backend/internals/features/galleries/dto"
	"agriformation_backend/internals/features/galleries/model"
	helpers "agriformation_backend/internals/helpers"
)

type GalleryPublicController struct {
	DB *gorm.DB
}

func NewGalleryPublicController(db *gorm.DB) *GalleryPublicController {
	return &GalleryPublicController{DB: db}
}

const featuredLimit = 6

// =============================
// GET /api/galleries/public
// =============================
// Published galleries only, newest event first.
func (ctrl *GalleryPublicController) ListPublished(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "event_date", "desc", helpers.DefaultOpts)

	q := ctrl.DB.Model(&model.GalleryModel{}).Where("gallery_is_published = ?", true)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to count galleries")
	}

	order, err := p.OrderExpr(map[string]string{
		"event_date": "gallery_event_date",
		"created_at": "gallery_created_at",
		"views":      "gallery_view_count",
	}, "event_date")
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid sort key")
	}

	var galleries []model.GalleryModel
	if err := q.Preload("Photos").Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&galleries).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to retrieve galleries")
	}

	items := make([]dto.GalleryDTO, 0, len(galleries))
	for _, g := range galleries {
		items = append(items, dto.ToGalleryDTO(g, false))
	}

	return helpers.Success(c, "OK", fiber.Map{
		"items": items,
		"meta":  helpers.BuildMeta(total, p),
	})
}

// =============================
// GET /api/galleries/public/featured
// =============================
// Most viewed published galleries.
func (ctrl *GalleryPublicController) Featured(c *fiber.Ctx) error {
	var galleries []model.GalleryModel
	err := ctrl.DB.Preload("Photos").
		Where("gallery_is_published = ?", true).
		Order("gallery_view_count DESC").
		Limit(featuredLimit).
		Find(&galleries).Error
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to retrieve galleries")
	}

	items := make([]dto.GalleryDTO, 0, len(galleries))
	for _, g := range galleries {
		items = append(items, dto.ToGalleryDTO(g, false))
	}
	return helpers.Success(c, "OK", fiber.Map{"items": items})
}

// =============================
// GET /api/galleries/public/category/:cat
// =============================
func (ctrl *GalleryPublicController) ByCategory(c *fiber.Ctx) error {
	category := c.Params("cat")
	if !constants.IsValidGalleryCategory(category) {
		return helpers.Error(c, fiber.StatusBadRequest, "Unknown gallery category")
	}

	var galleries []model.GalleryModel
	err := ctrl.DB.Preload("Photos").
		Where("gallery_is_published = ? AND gallery_category = ?", true, category).
		Order("gallery_event_date DESC").
		Find(&galleries).Error
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to retrieve galleries")
	}

	items := make([]dto.GalleryDTO, 0, len(galleries))
	for _, g := range galleries {
		items = append(items, dto.ToGalleryDTO(g, false))
	}
	return helpers.Success(c, "OK", fiber.Map{"items": items})
}

// =============================
// GET /api/galleries/public/:id
// =============================
// Each public detail fetch bumps the view counter.
func (ctrl *GalleryPublicController) GetPublished(c *fiber.Ctx) error {
	var gallery model.GalleryModel
	err := ctrl.DB.Preload("Photos", func(db *gorm.DB) *gorm.DB {
		return db.Order("photo_order ASC")
	}).First(&gallery, "gallery_id = ? AND gallery_is_published = ?", c.Params("id"), true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Gallery not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if err := ctrl.DB.Model(&gallery).
		UpdateColumn("gallery_view_count", gorm.Expr("gallery_view_count + 1")).Error; err == nil {
		gallery.GalleryViewCount++
	}

	return helpers.Success(c, "OK", fiber.Map{"gallery": dto.ToGalleryDTO(gallery, true)})
}
