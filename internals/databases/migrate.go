package database

import (
	"log"

	"gorm.io/gorm"

	galleryModel "agriformation_backend/internals/features/galleries/model"
	authModel "agriformation_backend/internals/features/users/auth/model"
	userModel "agriformation_backend/internals/features/users/user/model"
	applicationModel "agriformation_backend/internals/features/volunteers/applications/model"
	callModel "agriformation_backend/internals/features/volunteers/calls/model"
	volunteerModel "agriformation_backend/internals/features/volunteers/volunteer/model"
)

// RunMigrations auto-migrates every table. Gated behind AUTO_MIGRATE so
// production schemas stay under explicit control.
func RunMigrations(db *gorm.DB) {
	err := db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklistModel{},
		&applicationModel.ApplicationModel{},
		&volunteerModel.VolunteerModel{},
		&volunteerModel.ProgramModel{},
		&callModel.CallModel{},
		&callModel.CallApplicationModel{},
		&galleryModel.GalleryModel{},
		&galleryModel.PhotoModel{},
	)
	if err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ Database migrated")
}
