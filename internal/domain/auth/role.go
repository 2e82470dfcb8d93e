package auth

import "slices"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func IsRole(v string) bool {
	return v == string(RoleAdmin) || v == string(RoleUser)
}

// HasRole reports whether roles contains role.
func HasRole(roles []string, role Role) bool {
	return slices.Contains(roles, string(role))
}
