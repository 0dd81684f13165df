package dto

import (
	"time"

	"agriformation_backend/internals/features/users/user/model"
)

// ============================
// Response DTO
// ============================

type UserDTO struct {
	ID          string     `json:"id"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ============================
// Request DTO
// ============================

type CreateAdminRequest struct {
	FullName    string `json:"full_name" validate:"required,min=3,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=30"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=superadmin admin volunteer"`
}

// ============================
// Converter
// ============================

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		ID:          m.UserID.String(),
		FullName:    m.UserFullName,
		Email:       m.UserEmail,
		Role:        m.UserRole,
		PhoneNumber: m.UserPhoneNumber,
		IsActive:    m.UserIsActive,
		LastLogin:   m.UserLastLogin,
		CreatedAt:   m.UserCreatedAt,
	}
}
