package models

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCompany Role = "company"
	RoleUser    Role = "user"
)

// ParseRole rejects anything outside the closed role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleCompany, RoleUser:
		return Role(s), true
	default:
		return "", false
	}
}
