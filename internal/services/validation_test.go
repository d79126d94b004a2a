package services

import (
	"testing"

	"github.com/rbacdashboard/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRecord_User(t *testing.T) {
	valid := models.User{Username: "carol", Email: "carol@x.com", Role: "viewer", Status: models.UserStatusActive}
	assert.NoError(t, validateRecord(valid))

	err := validateRecord(models.User{Email: "bad", Status: "gone"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"username": "is required",
		"email":    "must be a valid email",
		"role":     "is required",
		"status":   "must be one of: active, inactive",
	}, verr.Details)
}

func TestValidateRecord_Role(t *testing.T) {
	tests := []struct {
		name     string
		role     models.Role
		expected map[string]string
	}{
		{
			name:     "valid",
			role:     models.Role{Name: "Viewer", Permissions: []models.Permission{models.PermissionRead}},
			expected: nil,
		},
		{
			name:     "empty permissions",
			role:     models.Role{Name: "Viewer", Permissions: []models.Permission{}},
			expected: map[string]string{"permissions": "must contain at least 1 item(s)"},
		},
		{
			name:     "duplicate permissions",
			role:     models.Role{Name: "Viewer", Permissions: []models.Permission{"read", "read"}},
			expected: map[string]string{"permissions": "must not contain duplicates"},
		},
		{
			name:     "unknown permission",
			role:     models.Role{Name: "Viewer", Permissions: []models.Permission{"read", "fly"}},
			expected: map[string]string{"permissions[1]": `unknown permission "fly"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRecord(tt.role)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.expected, verr.Details)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Details: map[string]string{
		"username": "is required",
		"email":    "must be a valid email",
	}}

	assert.Equal(t, "validation failed: email must be a valid email; username is required", err.Error())
}
