package models

// UserResponse is returned after a user is added or updated
type UserResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}

// RoleResponse is returned after a role is added or updated
type RoleResponse struct {
	Message string `json:"message"`
	Role    *Role  `json:"role"`
}

// MessageResponse carries a single human readable message
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
// Details maps request fields to validation messages and is only set for validation failures.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// UserPage is a page of users, used for API documentation
type UserPage struct {
	Items      []User `json:"items"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	Total      int    `json:"total"`
	TotalPages int    `json:"totalPages"`
}

// RolePage is a page of roles, used for API documentation
type RolePage struct {
	Items      []Role `json:"items"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	Total      int    `json:"total"`
	TotalPages int    `json:"totalPages"`
}
