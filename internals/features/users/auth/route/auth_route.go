package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/constants"
	"agriformation_backend/internals/features/users/auth/controller"
	"agriformation_backend/internals/middlewares"
	authMW "agriformation_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	auth.Post("/register", middlewares.ApplyRateLimiter(), authCtrl.Register)

	auth.Get("/me", authMW.AuthMiddleware(db), authCtrl.Me)
	auth.Post("/logout", authMW.AuthMiddleware(db), authCtrl.Logout)
	auth.Post("/create-admin",
		authMW.AuthMiddleware(db),
		authMW.OnlyRoles(constants.RoleErrorSuperadmin("create admin"), constants.RoleSuperadmin),
		authCtrl.CreateAdmin,
	)
}
