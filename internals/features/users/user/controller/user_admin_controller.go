package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/constants"
	"agriformation_backend/internals/features/users/user/dto"
	"agriformation_backend/internals/features/users/user/model"
	helpers "agriformation_backend/internals/helpers"
	authMW "agriformation_backend/internals/middlewares/auth"
)

var validateUser = validator.New()

type UserAdminController struct {
	DB *gorm.DB
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db}
}

// =============================
// GET /api/admin/users
// =============================
func (ctrl *UserAdminController) GetAllUsers(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := ctrl.DB.Model(&model.UserModel{})
	if role := c.Query("role"); role != "" {
		q = q.Where("user_role = ?", role)
	}
	if active := c.Query("is_active"); active != "" {
		q = q.Where("user_is_active = ?", active == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	order, err := p.OrderExpr(map[string]string{
		"created_at": "user_created_at",
		"full_name":  "user_full_name",
		"last_login": "user_last_login",
	}, "created_at")
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid sort key")
	}

	var users []model.UserModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&users).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	items := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		items = append(items, dto.ToUserDTO(u))
	}

	return helpers.Success(c, "OK", fiber.Map{
		"items": items,
		"meta":  helpers.BuildMeta(total, p),
	})
}

// =============================
// PUT /api/admin/users/:id/role
// =============================
// A user can never change their own role; role must be a known value.
func (ctrl *UserAdminController) UpdateUserRole(c *fiber.Ctx) error {
	id := c.Params("id")

	callerID, err := authMW.UserIDFromLocals(c)
	if err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if callerID.String() == id {
		return helpers.Error(c, fiber.StatusForbidden, "You cannot change your own role")
	}

	var body dto.UpdateUserRoleRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	user.UserRole = body.Role
	if err := ctrl.DB.Model(&user).UpdateColumn("user_role", body.Role).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update role")
	}

	return helpers.Success(c, "Role updated", fiber.Map{"user": dto.ToUserDTO(user)})
}

// =============================
// PUT /api/admin/users/:id/toggle-status
// =============================
// A superadmin account can never be deactivated.
func (ctrl *UserAdminController) ToggleUserStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if user.UserRole == constants.RoleSuperadmin {
		return helpers.Error(c, fiber.StatusForbidden, "A superadmin account cannot be deactivated")
	}

	user.UserIsActive = !user.UserIsActive
	if err := ctrl.DB.Model(&user).UpdateColumn("user_is_active", user.UserIsActive).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update status")
	}

	return helpers.Success(c, "Status updated", fiber.Map{"user": dto.ToUserDTO(user)})
}
