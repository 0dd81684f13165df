package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the users table.
type UserModel struct {
	UserID          uuid.UUID  `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserFullName    string     `gorm:"column:user_full_name;size:100;not null" json:"user_full_name"`
	UserEmail       string     `gorm:"column:user_email;size:255;unique;not null" json:"user_email"`
	UserPassword    string     `gorm:"column:user_password;not null" json:"-"`
	UserRole        string     `gorm:"column:user_role;type:varchar(20);not null;default:'volunteer'" json:"user_role"`
	UserPhoneNumber *string    `gorm:"column:user_phone_number;size:30" json:"user_phone_number,omitempty"`
	UserIsActive    bool       `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserLastLogin   *time.Time `gorm:"column:user_last_login" json:"user_last_login,omitempty"`
	UserCreatedAt   time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt   time.Time  `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
