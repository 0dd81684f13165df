package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/constants"
	"agriformation_backend/internals/features/galleries/dto"
	"agriformation_backend/internals/features/galleries/model"
	helpers "agriformation_backend/internals/helpers"
)

var validateGallery = validator.New()

type GalleryAdminController struct {
	DB *gorm.DB
}

func NewGalleryAdminController(db *gorm.DB) *GalleryAdminController {
	return &GalleryAdminController{DB: db}
}

// =============================
// GET /api/galleries
// =============================
func (ctrl *GalleryAdminController) GetAllGalleries(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "event_date", "desc", helpers.AdminOpts)

	q := ctrl.DB.Model(&model.GalleryModel{})
	if category := c.Query("category"); category != "" {
		if !constants.IsValidGalleryCategory(category) {
			return helpers.Error(c, fiber.StatusBadRequest, "Unknown gallery category")
		}
		q = q.Where("gallery_category = ?", category)
	}
	if published := c.Query("is_published"); published != "" {
		q = q.Where("gallery_is_published = ?", published == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to count galleries")
	}

	order, err := p.OrderExpr(map[string]string{
		"event_date": "gallery_event_date",
		"created_at": "gallery_created_at",
		"title":      "gallery_title",
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
// POST /api/galleries
// =============================
func (ctrl *GalleryAdminController) CreateGallery(c *fiber.Ctx) error {
	var body dto.CreateGalleryRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGallery.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	gallery := model.GalleryModel{
		GalleryTitle:       body.Title,
		GalleryDescription: body.Description,
		GalleryEventDate:   body.EventDate,
		GalleryCategory:    body.Category,
	}
	if body.Location != "" {
		gallery.GalleryLocation = &body.Location
	}
	if err := ctrl.DB.Create(&gallery).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to create gallery")
	}

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Gallery created", fiber.Map{
		"gallery": dto.ToGalleryDTO(gallery, true),
	})
}

// =============================
// GET /api/galleries/:id
// =============================
func (ctrl *GalleryAdminController) GetGalleryDetails(c *fiber.Ctx) error {
	gallery, err := ctrl.findGallery(c.Params("id"))
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.Success(c, "OK", fiber.Map{"gallery": dto.ToGalleryDTO(*gallery, true)})
}

// =============================
// PUT /api/galleries/:id
// =============================
func (ctrl *GalleryAdminController) UpdateGallery(c *fiber.Ctx) error {
	var body dto.UpdateGalleryRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGallery.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	gallery, err := ctrl.findGallery(c.Params("id"))
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	if body.Title != nil {
		gallery.GalleryTitle = *body.Title
	}
	if body.Description != nil {
		gallery.GalleryDescription = *body.Description
	}
	if body.EventDate != nil {
		gallery.GalleryEventDate = *body.EventDate
	}
	if body.Location != nil {
		gallery.GalleryLocation = body.Location
	}
	if body.Category != nil {
		gallery.GalleryCategory = *body.Category
	}

	if err := ctrl.DB.Save(gallery).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update gallery")
	}

	return helpers.Success(c, "Gallery updated", fiber.Map{"gallery": dto.ToGalleryDTO(*gallery, true)})
}

// =============================
// DELETE /api/galleries/:id
// =============================
// Removes the gallery, its photo rows, and the stored image objects.
func (ctrl *GalleryAdminController) DeleteGallery(c *fiber.Ctx) error {
	gallery, err := ctrl.findGallery(c.Params("id"))
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("photo_gallery_id = ?", gallery.GalleryID).
			Delete(&model.PhotoModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(gallery).Error
	})
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to delete gallery")
	}

	for _, photo := range gallery.Photos {
		if err := helpers.DeleteImage(photo.PhotoKey); err != nil {
			log.Printf("[WARN] failed to delete photo %s: %v", photo.PhotoKey, err)
		}
	}

	return helpers.Success(c, "Gallery deleted", fiber.Map{"id": gallery.GalleryID.String()})
}

// =============================
// POST /api/galleries/:id/photos
// =============================
// Multipart upload, field "photos" (one or more files). New photos are ordered
// after any existing ones.
func (ctrl *GalleryAdminController) AddPhotos(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Multipart form is required")
	}
	files := form.File["photos"]
	if len(files) == 0 {
		return helpers.Error(c, fiber.StatusBadRequest, "At least one photo is required")
	}
	for _, fh := range files {
		if err := helpers.ValidateImageUpload(fh); err != nil {
			return helpers.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", fiber.Map{
				"photos": fh.Filename + ": " + err.Error(),
			})
		}
	}

	gallery, err := ctrl.findGallery(c.Params("id"))
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	nextOrder := 0
	for _, photo := range gallery.Photos {
		if photo.PhotoOrder >= nextOrder {
			nextOrder = photo.PhotoOrder + 1
		}
	}

	added := make([]model.PhotoModel, 0, len(files))
	for _, fh := range files {
		url, key, err := helpers.UploadImage("galleries", fh)
		if err != nil {
			return helpers.Error(c, fiber.StatusInternalServerError, "Failed to upload "+fh.Filename)
		}
		added = append(added, model.PhotoModel{
			PhotoGalleryID: gallery.GalleryID,
			PhotoURL:       url,
			PhotoKey:       key,
			PhotoOrder:     nextOrder,
		})
		nextOrder++
	}

	if err := ctrl.DB.Create(&added).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to save photos")
	}

	gallery.Photos = append(gallery.Photos, added...)
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Photos added", fiber.Map{
		"gallery": dto.ToGalleryDTO(*gallery, true),
	})
}

// =============================
// PUT /api/galleries/:id/photos/:photoId
// =============================
func (ctrl *GalleryAdminController) UpdatePhoto(c *fiber.Ctx) error {
	var body dto.UpdatePhotoRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGallery.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	var photo model.PhotoModel
	err := ctrl.DB.First(&photo, "photo_id = ? AND photo_gallery_id = ?",
		c.Params("photoId"), c.Params("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Photo not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if body.Caption != nil {
		photo.PhotoCaption = body.Caption
	}
	if body.Order != nil {
		photo.PhotoOrder = *body.Order
	}
	if err := ctrl.DB.Save(&photo).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update photo")
	}

	return helpers.Success(c, "Photo updated", fiber.Map{"photo": dto.ToPhotoDTO(photo)})
}

// =============================
// DELETE /api/galleries/:id/photos/:photoId
// =============================
// Deleting the cover photo clears the gallery's cover reference in the same
// transaction, so the reference can never dangle.
func (ctrl *GalleryAdminController) DeletePhoto(c *fiber.Ctx) error {
	gallery, err := ctrl.findGallery(c.Params("id"))
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	var photo *model.PhotoModel
	for i := range gallery.Photos {
		if gallery.Photos[i].PhotoID.String() == c.Params("photoId") {
			photo = &gallery.Photos[i]
			break
		}
	}
	if photo == nil {
		return helpers.Error(c, fiber.StatusNotFound, "Photo not found")
	}

	wasCover := gallery.IsCover(photo.PhotoKey)
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(photo).Error; err != nil {
			return err
		}
		if wasCover {
			return tx.Model(gallery).Updates(map[string]interface{}{
				"gallery_cover_image_url": nil,
				"gallery_cover_image_key": nil,
			}).Error
		}
		return nil
	})
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to delete photo")
	}

	if err := helpers.DeleteImage(photo.PhotoKey); err != nil {
		log.Printf("[WARN] failed to delete photo %s: %v", photo.PhotoKey, err)
	}

	if wasCover {
		gallery.ClearCover()
	}
	return helpers.Success(c, "Photo deleted", fiber.Map{
		"id":            photo.PhotoID.String(),
		"cover_cleared": wasCover,
	})
}

// =============================
// PUT /api/galleries/:id/cover
// =============================
// The cover must reference one of the gallery's own photos.
func (ctrl *GalleryAdminController) SetCover(c *fiber.Ctx) error {
	var body dto.SetCoverRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGallery.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	gallery, err := ctrl.findGallery(c.Params("id"))
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	photo := gallery.FindPhotoByKey(body.PublicID)
	if photo == nil {
		return helpers.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", fiber.Map{
			"public_id": "does not reference a photo in this gallery",
		})
	}

	gallery.GalleryCoverImageURL = &photo.PhotoURL
	gallery.GalleryCoverImageKey = &photo.PhotoKey
	if err := ctrl.DB.Model(gallery).Updates(map[string]interface{}{
		"gallery_cover_image_url": photo.PhotoURL,
		"gallery_cover_image_key": photo.PhotoKey,
	}).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to set cover")
	}

	return helpers.Success(c, "Cover updated", fiber.Map{"gallery": dto.ToGalleryDTO(*gallery, true)})
}

// =============================
// PUT /api/galleries/:id/publish
// =============================
func (ctrl *GalleryAdminController) PublishGallery(c *fiber.Ctx) error {
	var body dto.PublishGalleryRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	gallery, err := ctrl.findGallery(c.Params("id"))
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	gallery.GalleryIsPublished = body.IsPublished
	if err := ctrl.DB.Model(gallery).
		UpdateColumn("gallery_is_published", body.IsPublished).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update publish state")
	}

	return helpers.Success(c, "Publish state updated", fiber.Map{"gallery": dto.ToGalleryDTO(*gallery, false)})
}

// =============================
// GET /api/galleries/stats
// =============================
func (ctrl *GalleryAdminController) GetStats(c *fiber.Ctx) error {
	var totalGalleries, publishedGalleries, totalPhotos int64
	var totalViews int64

	if err := ctrl.DB.Model(&model.GalleryModel{}).Count(&totalGalleries).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	ctrl.DB.Model(&model.GalleryModel{}).Where("gallery_is_published = ?", true).Count(&publishedGalleries)
	ctrl.DB.Model(&model.PhotoModel{}).Count(&totalPhotos)
	ctrl.DB.Model(&model.GalleryModel{}).
		Select("COALESCE(SUM(gallery_view_count), 0)").Scan(&totalViews)

	type categoryCount struct {
		Category string `gorm:"column:gallery_category"`
		Count    int64  `gorm:"column:count"`
	}
	var rows []categoryCount
	ctrl.DB.Model(&model.GalleryModel{}).
		Select("gallery_category, COUNT(*) AS count").
		Group("gallery_category").
		Scan(&rows)

	categories := make(map[string]int64, len(rows))
	for _, row := range rows {
		categories[row.Category] = row.Count
	}

	return helpers.Success(c, "OK", fiber.Map{
		"total_galleries":     totalGalleries,
		"published_galleries": publishedGalleries,
		"total_photos":        totalPhotos,
		"total_views":         totalViews,
		"category_counts":     categories,
	})
}

func (ctrl *GalleryAdminController) findGallery(id string) (*model.GalleryModel, error) {
	var gallery model.GalleryModel
	err := ctrl.DB.Preload("Photos", func(db *gorm.DB) *gorm.DB {
		return db.Order("photo_order ASC")
	}).First(&gallery, "gallery_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Gallery not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}
	return &gallery, nil
}
