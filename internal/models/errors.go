package models

import "errors"

// ErrUserNotFound is returned when a user with the requested ID does not exist
var ErrUserNotFound = errors.New("user not found")

// ErrRoleNotFound is returned when a role with the requested ID does not exist
var ErrRoleNotFound = errors.New("role not found")
