package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rbacdashboard/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	data := Default()

	require.Len(t, data.Users, 2)
	require.Len(t, data.Roles, 2)
	assert.Equal(t, "admin", data.Users[0].Username)
	assert.Equal(t, "super_admin", data.Users[0].Role)
	assert.Equal(t, "editor", data.Users[1].Username)
	assert.Equal(t, "content_editor", data.Users[1].Role)
	assert.Equal(t, "Super Admin", data.Roles[0].Name)
	assert.Equal(t, []models.Permission{"read", "write"}, data.Roles[1].Permissions)
}

func TestDefault_ReturnsFreshCopy(t *testing.T) {
	first := Default()
	first.Users[0].Username = "changed"
	first.Roles[0].Permissions[0] = "changed"

	second := Default()
	assert.Equal(t, "admin", second.Users[0].Username)
	assert.Equal(t, models.PermissionRead, second.Roles[0].Permissions[0])
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	data, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), data)
}

func TestLoadFile(t *testing.T) {
	path := writeSeedFile(t, `
users:
  - id: "10"
    username: alice
    email: alice@example.com
    role: auditor
  - id: "11"
    username: bob
    email: bob@example.com
    role: auditor
    status: inactive
roles:
  - id: "5"
    name: Auditor
    permissions: [read]
`)

	data, err := LoadFile(path)

	require.NoError(t, err)
	require.Len(t, data.Users, 2)
	assert.Equal(t, models.UserStatusActive, data.Users[0].Status)
	assert.Equal(t, models.UserStatusInactive, data.Users[1].Status)
	require.Len(t, data.Roles, 1)
	assert.Equal(t, []models.Permission{models.PermissionRead}, data.Roles[0].Permissions)
	assert.Equal(t, []string{"10", "11"}, data.UserIDs())
	assert.Equal(t, []string{"5"}, data.RoleIDs())
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "malformed yaml",
			content: "users: [",
		},
		{
			name: "missing user id",
			content: `
users:
  - username: alice
`,
		},
		{
			name: "duplicate user id",
			content: `
users:
  - id: "1"
    username: alice
  - id: "1"
    username: bob
`,
		},
		{
			name: "duplicate role id",
			content: `
roles:
  - id: "1"
    name: A
  - id: "1"
    name: B
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := LoadFile(writeSeedFile(t, tt.content))
			assert.Error(t, err)
			assert.Nil(t, data)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	data, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
	assert.Nil(t, data)
}
