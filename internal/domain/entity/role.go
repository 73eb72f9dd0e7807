package entity

import "strings"

// allowedRoles is the fixed set of roles a user may hold.
var allowedRoles = []string{"HR", "IT", "Admin"}

// AllowedRoles returns the role allow-list in display order.
func AllowedRoles() []string {
	out := make([]string, len(allowedRoles))
	copy(out, allowedRoles)
	return out
}

// IsValidRole reports whether role matches the allow-list, ignoring case.
func IsValidRole(role string) bool {
	for _, r := range allowedRoles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}
