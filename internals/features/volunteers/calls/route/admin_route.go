package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/features/volunteers/calls/controller"
)

// CallAdminRoutes mounts volunteer-call management under the admin group.
func CallAdminRoutes(api fiber.Router, db *gorm.DB) {
	callCtrl := controller.NewCallAdminController(db)

	calls := api.Group("/volunteer-calls")
	calls.Get("/", callCtrl.GetAllCalls)
	calls.Post("/", callCtrl.CreateCall)
	calls.Get("/stats", callCtrl.GetStats)
	calls.Get("/:id", callCtrl.GetCallDetails)
	calls.Put("/:id", callCtrl.UpdateCall)
	calls.Delete("/:id", callCtrl.DeleteCall)
	calls.Put("/:id/publish", callCtrl.PublishCall)
	calls.Put("/:id/status", callCtrl.UpdateCallStatus)
	calls.Put("/:id/design-image", callCtrl.UploadDesignImage)
	calls.Put("/:id/applications/:appId", callCtrl.UpdateApplicationStatus)
}
