package users

import (
	"log"
	"os"

	"gorm.io/gorm"

	"agriformation_backend/internals/constants"
	"agriformation_backend/internals/features/users/auth/service"
	userModel "agriformation_backend/internals/features/users/user/model"
)

// SeedSuperadmin creates the initial superadmin account from
// SUPERADMIN_EMAIL / SUPERADMIN_PASSWORD. It does nothing when the account
// already exists or the variables are unset.
func SeedSuperadmin(db *gorm.DB) {
	email := os.Getenv("SUPERADMIN_EMAIL")
	password := os.Getenv("SUPERADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️ SUPERADMIN_EMAIL / SUPERADMIN_PASSWORD not set, skipping superadmin seed")
		return
	}

	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_email = ?", email).
		Count(&count).Error; err != nil {
		log.Printf("[ERROR] superadmin seed lookup failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hashed, err := service.HashPassword(password)
	if err != nil {
		log.Printf("[ERROR] superadmin seed hash failed: %v", err)
		return
	}

	name := os.Getenv("SUPERADMIN_NAME")
	if name == "" {
		name = "Superadmin"
	}

	user := userModel.UserModel{
		UserFullName: name,
		UserEmail:    email,
		UserPassword: hashed,
		UserRole:     constants.RoleSuperadmin,
		UserIsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("[ERROR] superadmin seed insert failed: %v", err)
		return
	}
	log.Printf("✅ Seeded superadmin %s", email)
}
