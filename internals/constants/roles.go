package constants

import "fmt"

const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleVolunteer  = "volunteer"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess      = "Only admins may access %s."
	ErrOnlySuperadminsCanAccess = "Only a superadmin may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSuperadmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperadminsCanAccess, feature)
}

// ==========================
// Grouped role slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperadmin,
		RoleAdmin,
		RoleVolunteer,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleSuperadmin,
	}

	SuperadminOnly = []string{
		RoleSuperadmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
