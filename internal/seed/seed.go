// Package seed provides the initial contents of the user and role registries
package seed

import (
	"fmt"
	"os"

	"github.com/rbacdashboard/backend/internal/models"
	"gopkg.in/yaml.v3"
)

// Data holds the records the registries start with
type Data struct {
	Users []models.User `json:"users" yaml:"users"`
	Roles []models.Role `json:"roles" yaml:"roles"`
}

// Default returns the built-in seed data.
//
// User roles ("super_admin") intentionally differ from role names ("Super Admin"):
// the two collections are not linked.
func Default() *Data {
	return &Data{
		Users: []models.User{
			{
				ID:       "1",
				Username: "admin",
				Email:    "admin@example.com",
				Role:     "super_admin",
				Status:   models.UserStatusActive,
			},
			{
				ID:       "2",
				Username: "editor",
				Email:    "editor@example.com",
				Role:     "content_editor",
				Status:   models.UserStatusActive,
			},
		},
		Roles: []models.Role{
			{
				ID:   "1",
				Name: "Super Admin",
				Permissions: []models.Permission{
					models.PermissionRead,
					models.PermissionWrite,
					models.PermissionDelete,
					models.PermissionManageUsers,
				},
			},
			{
				ID:          "2",
				Name:        "Content Editor",
				Permissions: []models.Permission{models.PermissionRead, models.PermissionWrite},
			},
		},
	}
}

// Load returns the seed stored at path, or the built-in seed when path is empty
func Load(path string) (*Data, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads seed data from a YAML file.
//
// Users without a status are stored as active. IDs must be present and unique per collection.
func LoadFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	if err := data.normalize(); err != nil {
		return nil, fmt.Errorf("invalid seed file %s: %w", path, err)
	}

	return &data, nil
}

// normalize fills defaults and checks identifier uniqueness
func (d *Data) normalize() error {
	userIDs := make(map[string]struct{}, len(d.Users))
	for i := range d.Users {
		user := &d.Users[i]
		if user.ID == "" {
			return fmt.Errorf("user %d has no id", i)
		}
		if _, ok := userIDs[user.ID]; ok {
			return fmt.Errorf("duplicate user id: %s", user.ID)
		}
		userIDs[user.ID] = struct{}{}
		if user.Status == "" {
			user.Status = models.UserStatusActive
		}
	}

	roleIDs := make(map[string]struct{}, len(d.Roles))
	for i, role := range d.Roles {
		if role.ID == "" {
			return fmt.Errorf("role %d has no id", i)
		}
		if _, ok := roleIDs[role.ID]; ok {
			return fmt.Errorf("duplicate role id: %s", role.ID)
		}
		roleIDs[role.ID] = struct{}{}
	}

	return nil
}

// UserIDs returns the identifiers of the seeded users
func (d *Data) UserIDs() []string {
	ids := make([]string, len(d.Users))
	for i, user := range d.Users {
		ids[i] = user.ID
	}
	return ids
}

// RoleIDs returns the identifiers of the seeded roles
func (d *Data) RoleIDs() []string {
	ids := make([]string, len(d.Roles))
	for i, role := range d.Roles {
		ids[i] = role.ID
	}
	return ids
}
