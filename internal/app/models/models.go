package models

// RoleType represents a user's assigned platform role.
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleTutor   RoleType = "TUTOR"
	RoleStudent RoleType = "STUDENT"
)

// ValidRole reports whether the given value is an assignable role.
func ValidRole(role RoleType) bool {
	switch role {
	case RoleAdmin, RoleTutor, RoleStudent:
		return true
	}
	return false
}
