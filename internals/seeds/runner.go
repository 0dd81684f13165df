package seeds

import (
	"gorm.io/gorm"

	users "agriformation_backend/internals/seeds/users"
)

// RunAllSeeds applies every bootstrap seed. Each seeder is idempotent, so
// running this on every boot is safe.
func RunAllSeeds(db *gorm.DB) {
	users.SeedSuperadmin(db)
}
