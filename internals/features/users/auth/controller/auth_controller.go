package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agriformation_backend/internals/constants"
	authDTO "agriformation_backend/internals/features/users/auth/dto"
	authModel "agriformation_backend/internals/features/users/auth/model"
	"agriformation_backend/internals/features/users/auth/service"
	userDTO "agriformation_backend/internals/features/users/user/dto"
	userModel "agriformation_backend/internals/features/users/user/model"
	helpers "agriformation_backend/internals/helpers"
	authMW "agriformation_backend/internals/middlewares/auth"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// POST /api/auth/login
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body authDTO.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_email = ?", body.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if !service.CheckPassword(user.UserPassword, body.Password) {
		return helpers.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.UserIsActive {
		return helpers.Error(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	token, err := service.IssueAccessToken(user)
	if err != nil {
		log.Printf("[ERROR] issue token: %v", err)
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	now := time.Now()
	user.UserLastLogin = &now
	if err := ctrl.DB.Model(&user).UpdateColumn("user_last_login", now).Error; err != nil {
		log.Printf("[WARNING] update last login: %v", err)
	}

	return helpers.Success(c, "Login successful", authDTO.LoginData{
		User:  userDTO.ToUserDTO(user),
		Token: token,
	})
}

// =============================
// POST /api/auth/register
// =============================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body authDTO.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	hashed, err := service.HashPassword(body.Password)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserFullName: body.FullName,
		UserEmail:    body.Email,
		UserPassword: hashed,
		UserRole:     constants.RoleVolunteer,
	}
	if body.PhoneNumber != "" {
		user.UserPhoneNumber = &body.PhoneNumber
	}

	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helpers.Error(c, fiber.StatusConflict, "Email is already registered")
	}

	token, err := service.IssueAccessToken(user)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Registration successful", authDTO.LoginData{
		User:  userDTO.ToUserDTO(user),
		Token: token,
	})
}

// =============================
// GET /api/auth/me
// =============================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := authMW.UserIDFromLocals(c)
	if err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "User not found")
	}

	return helpers.Success(c, "OK", authDTO.MeData{User: userDTO.ToUserDTO(user)})
}

// =============================
// POST /api/auth/logout
// =============================
// Blacklists the presented token until its natural expiry.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString := authMW.BearerTokenFromLocals(c)
	if tokenString == "" {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	claims, err := service.ParseClaims(tokenString)
	expiredAt := time.Now().Add(service.AccessTokenTTL)
	if err == nil {
		expiredAt = service.TokenExpiry(claims)
	}

	entry := authModel.TokenBlacklistModel{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		log.Printf("[WARNING] blacklist insert: %v", err)
	}

	return helpers.Success(c, "Logged out", nil)
}

// =============================
// POST /api/auth/create-admin (superadmin)
// =============================
func (ctrl *AuthController) CreateAdmin(c *fiber.Ctx) error {
	var body userDTO.CreateAdminRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	hashed, err := service.HashPassword(body.Password)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserFullName: body.FullName,
		UserEmail:    body.Email,
		UserPassword: hashed,
		UserRole:     constants.RoleAdmin,
	}
	if body.PhoneNumber != "" {
		user.UserPhoneNumber = &body.PhoneNumber
	}

	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helpers.Error(c, fiber.StatusConflict, "Email is already registered")
	}

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Admin created", fiber.Map{
		"user": userDTO.ToUserDTO(user),
	})
}
