package models

// UserStatus represents whether a user account is enabled
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// IsValid reports whether the status is one of the known values
func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusInactive
}

// User represents a user record in the registry.
//
// Role holds a role name by convention only. It is never checked against the role registry.
// Validation tags describe a well-formed record; the service layer checks them before storing.
type User struct {
	ID       string     `json:"id" yaml:"id"`
	Username string     `json:"username" yaml:"username" validate:"required"`
	Email    string     `json:"email" yaml:"email" validate:"required,email"`
	Role     string     `json:"role" yaml:"role" validate:"required"`
	Status   UserStatus `json:"status" yaml:"status" validate:"required,oneof=active inactive"`
}

// CreateUserRequest represents a request to add a user
type CreateUserRequest struct {
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	Status   UserStatus `json:"status,omitempty"` // Default: "active"
}

// UpdateUserRequest represents a request to edit a user.
// Only non-nil fields are applied.
type UpdateUserRequest struct {
	Username *string     `json:"username,omitempty"`
	Email    *string     `json:"email,omitempty"`
	Role     *string     `json:"role,omitempty"`
	Status   *UserStatus `json:"status,omitempty"`
}

// Apply returns a copy of user with the request fields applied. The ID is never changed.
func (r *UpdateUserRequest) Apply(user User) User {
	if r.Username != nil {
		user.Username = *r.Username
	}
	if r.Email != nil {
		user.Email = *r.Email
	}
	if r.Role != nil {
		user.Role = *r.Role
	}
	if r.Status != nil {
		user.Status = *r.Status
	}
	return user
}
