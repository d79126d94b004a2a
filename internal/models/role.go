package models

import "slices"

// Permission is a label from the fixed permission vocabulary
type Permission string

const (
	PermissionRead           Permission = "read"
	PermissionWrite          Permission = "write"
	PermissionDelete         Permission = "delete"
	PermissionManageUsers    Permission = "manage_users"
	PermissionCreateContent  Permission = "create_content"
	PermissionApproveContent Permission = "approve_content"
)

var permissionOptions = []Permission{
	PermissionRead,
	PermissionWrite,
	PermissionDelete,
	PermissionManageUsers,
	PermissionCreateContent,
	PermissionApproveContent,
}

// PermissionOptions returns the fixed permission vocabulary in display order
func PermissionOptions() []Permission {
	return slices.Clone(permissionOptions)
}

// IsValid reports whether the permission belongs to the vocabulary
func (p Permission) IsValid() bool {
	return slices.Contains(permissionOptions, p)
}

// Role represents a named set of permissions.
//
// The data layer stores whatever permissions it is given; the vocabulary is enforced by the service layer.
type Role struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name" validate:"required"`
	Permissions []Permission `json:"permissions" yaml:"permissions" validate:"required,min=1,unique,dive,permission"`
}

// Clone returns a deep copy of the role
func (r Role) Clone() Role {
	r.Permissions = slices.Clone(r.Permissions)
	return r
}

// CreateRoleRequest represents a request to add a role
type CreateRoleRequest struct {
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
}

// UpdateRoleRequest represents a request to edit a role.
// Only non-nil fields are applied.
type UpdateRoleRequest struct {
	Name        *string      `json:"name,omitempty"`
	Permissions []Permission `json:"permissions,omitempty"`
}

// Apply returns a copy of role with the request fields applied. The ID is never changed.
func (r *UpdateRoleRequest) Apply(role Role) Role {
	role = role.Clone()
	if r.Name != nil {
		role.Name = *r.Name
	}
	if r.Permissions != nil {
		role.Permissions = slices.Clone(r.Permissions)
	}
	return role
}
