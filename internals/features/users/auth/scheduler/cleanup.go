package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "agriformation_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler periodically prunes expired blacklist rows.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			res := db.Where("expired_at < ?", time.Now()).Delete(&authModel.TokenBlacklistModel{})
			if res.Error != nil {
				log.Printf("[ERROR] blacklist cleanup: %v", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("[INFO] blacklist cleanup removed %d tokens", res.RowsAffected)
			}
		}
	}()
}
