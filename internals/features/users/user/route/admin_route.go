package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/constants"
	authController "agriformation_backend/internals/features/users/auth/controller"
	"agriformation_backend/internals/features/users/user/controller"
	authMW "agriformation_backend/internals/middlewares/auth"
)

// UserAdminRoutes mounts system-user management; superadmin only.
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserAdminController(db)
	authCtrl := authController.NewAuthController(db)

	users := api.Group("/users",
		authMW.OnlyRoles(constants.RoleErrorSuperadmin("system users"), constants.RoleSuperadmin),
	)
	users.Get("/", userCtrl.GetAllUsers)
	users.Post("/create-admin", authCtrl.CreateAdmin)
	users.Put("/:id/role", userCtrl.UpdateUserRole)
	users.Put("/:id/toggle-status", userCtrl.ToggleUserStatus)
}
