package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/features/galleries/controller"
)

// GalleryPublicRoutes mounts the unauthenticated gallery endpoints. Must be
// registered before the protected gallery group so /public is reachable
// without a token.
func GalleryPublicRoutes(app fiber.Router, db *gorm.DB) {
	galleryCtrl := controller.NewGalleryPublicController(db)

	public := app.Group("/api/galleries/public")
	public.Get("/", galleryCtrl.ListPublished)
	public.Get("/featured", galleryCtrl.Featured)
	public.Get("/category/:cat", galleryCtrl.ByCategory)
	public.Get("/:id", galleryCtrl.GetPublished)
}
