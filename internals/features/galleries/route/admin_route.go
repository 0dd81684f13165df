package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/features/galleries/controller"
)

// GalleryAdminRoutes mounts gallery management at /api/galleries behind the
// given guard handlers. Register GalleryPublicRoutes first so the /public
// subtree stays unauthenticated.
func GalleryAdminRoutes(app fiber.Router, db *gorm.DB, guards ...fiber.Handler) {
	galleryCtrl := controller.NewGalleryAdminController(db)

	galleries := app.Group("/api/galleries", guards...)
	galleries.Get("/", galleryCtrl.GetAllGalleries)
	galleries.Post("/", galleryCtrl.CreateGallery)
	galleries.Get("/stats", galleryCtrl.GetStats)
	galleries.Get("/:id", galleryCtrl.GetGalleryDetails)
	galleries.Put("/:id", galleryCtrl.UpdateGallery)
	galleries.Delete("/:id", galleryCtrl.DeleteGallery)
	galleries.Post("/:id/photos", galleryCtrl.AddPhotos)
	galleries.Put("/:id/photos/:photoId", galleryCtrl.UpdatePhoto)
	galleries.Delete("/:id/photos/:photoId", galleryCtrl.DeletePhoto)
	galleries.Put("/:id/cover", galleryCtrl.SetCover)
	galleries.Put("/:id/publish", galleryCtrl.PublishGallery)
}
