package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{"HR", true},
		{"hr", true},
		{"IT", true},
		{"Admin", true},
		{"ADMIN", true},
		{"Sales", false},
		{"", false},
		{"Admin ", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidRole(tt.role), "role %q", tt.role)
	}
}

func TestAllowedRolesReturnsCopy(t *testing.T) {
	roles := AllowedRoles()
	assert.Equal(t, []string{"HR", "IT", "Admin"}, roles)

	roles[0] = "mutated"
	assert.Equal(t, []string{"HR", "IT", "Admin"}, AllowedRoles())
}
