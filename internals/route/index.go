package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/constants"
	dashboardRoute "agriformation_backend/internals/features/dashboard/route"
	galleryRoute "agriformation_backend/internals/features/galleries/route"
	authRoute "agriformation_backend/internals/features/users/auth/route"
	userRoute "agriformation_backend/internals/features/users/user/route"
	applicationRoute "agriformation_backend/internals/features/volunteers/applications/route"
	callRoute "agriformation_backend/internals/features/volunteers/calls/route"
	volunteerRoute "agriformation_backend/internals/features/volunteers/volunteer/route"
	authMW "agriformation_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature route. Public routes are registered before
// the guarded groups that share their prefixes, so they resolve without a
// token.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	// -------- Public --------
	authRoute.AuthRoutes(app, db)
	applicationRoute.ApplicationPublicRoutes(app, db)
	callRoute.CallPublicRoutes(app, db)
	galleryRoute.GalleryPublicRoutes(app, db)

	// -------- Authenticated volunteer --------
	volunteerAPI := app.Group("/api/volunteers", authMW.AuthMiddleware(db))
	volunteerRoute.VolunteerProfileRoutes(volunteerAPI, db)

	// -------- Admin --------
	adminAPI := app.Group("/api/admin",
		authMW.AuthMiddleware(db),
		authMW.OnlyRoles(constants.RoleErrorAdmin("the admin area"), constants.AdminAndAbove...),
	)
	applicationRoute.ApplicationAdminRoutes(adminAPI, db)
	volunteerRoute.VolunteerAdminRoutes(adminAPI, db)
	callRoute.CallAdminRoutes(adminAPI, db)
	dashboardRoute.DashboardRoutes(adminAPI, db)
	userRoute.UserAdminRoutes(adminAPI, db)

	galleryRoute.GalleryAdminRoutes(app, db,
		authMW.AuthMiddleware(db),
		authMW.OnlyRoles(constants.RoleErrorAdmin("gallery management"), constants.AdminAndAbove...),
	)
}
