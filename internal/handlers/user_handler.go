package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rbacdashboard/backend/internal/models"
	"github.com/rbacdashboard/backend/internal/pagination"
	"go.uber.org/zap"
)

// UserService is the interface that wraps methods for the user registry
type UserService interface {
	// Method AddUser validates the request and appends a new user with a fresh ID.
	//
	// If the request is invalid, *services.ValidationError will be returned together with "nil" value.
	AddUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	// Method EditUser applies the non-nil request fields to the user with the given ID.
	//
	// If no user has that ID, models.MutationSkipped will be returned together with "nil" user and error.
	// If the merged user is invalid, *services.ValidationError will be returned.
	EditUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, models.MutationResult, error)
	// Method DeleteUser removes the user with the given ID.
	//
	// If no user has that ID, models.MutationSkipped will be returned together with "nil" error.
	DeleteUser(ctx context.Context, id string) (models.MutationResult, error)
	// Method GetUser retrieves a user by ID.
	//
	// If user with such ID does not exist, an error wrapping models.ErrUserNotFound will be returned.
	GetUser(ctx context.Context, id string) (*models.User, error)
	// Method ListUsers searches, sorts and paginates users.
	//
	// "params.Sort" must be empty, "username", "email" or "role" and "params.Order" must be empty, "asc" or "desc",
	// otherwise an error wrapping services.ErrInvalidListParams will be returned.
	ListUsers(ctx context.Context, params models.ListParams) (*pagination.Page[models.User], error)
}

// UserHandler handles HTTP requests for the user registry
type UserHandler struct {
	BaseHandler
	service         UserService
	defaultPageSize int
	maxPageSize     int
}

// NewUserHandler creates a new user handler
func NewUserHandler(svc UserService, logger *zap.Logger, defaultPageSize, maxPageSize int) *UserHandler {
	return &UserHandler{
		BaseHandler:     BaseHandler{logger: logger},
		service:         svc,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// RegisterRoutes registers all user handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Post("/", h.AddUser)
		r.Get("/{id}", h.GetUser)
		r.Patch("/{id}", h.EditUser)
		r.Put("/{id}", h.EditUser)
		r.Delete("/{id}", h.DeleteUser)
	})
}

// ListUsers handles GET /users
// @Summary List users
// @Description Get a page of users, optionally filtered by a case-insensitive search over username, email and role
// @Tags users
// @Produce json
// @Param search query string false "Substring to search for"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Items per page (default: 10)"
// @Param sort query string false "Sort field" Enums(username, email, role)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} models.UserPage "Page of users"
// @Failure 400 {object} models.ErrorResponse "Invalid sort parameters"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	params := parseListParams(r, h.defaultPageSize, h.maxPageSize)

	page, err := h.service.ListUsers(r.Context(), params)
	if err != nil {
		h.respondServiceError(w, err, "list users")
		return
	}

	h.respondJSON(w, http.StatusOK, page)
}

// GetUser handles GET /users/{id}
// @Summary Get user
// @Description Get a single user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User "User"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err, "get user")
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// AddUser handles POST /users
// @Summary Add user
// @Description Add a user. Status defaults to "active". Duplicate usernames and emails are allowed.
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.CreateUserRequest true "User data"
// @Success 201 {object} models.UserResponse "User added"
// @Failure 400 {object} models.ErrorResponse "Invalid request body or validation failed"
// @Failure 413 {object} models.ErrorResponse "Request body too large"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users [post]
func (h *UserHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondDecodeError(w, err)
		return
	}

	user, err := h.service.AddUser(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err, "add user")
		return
	}

	h.respondJSON(w, http.StatusCreated, models.UserResponse{Message: "User added successfully", User: user})
}

// EditUser handles PATCH and PUT /users/{id}
// @Summary Edit user
// @Description Apply the provided fields to an existing user. The ID never changes.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body models.UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.UserResponse "User updated"
// @Failure 400 {object} models.ErrorResponse "Invalid request body or validation failed"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id} [patch]
// @Router /users/{id} [put]
func (h *UserHandler) EditUser(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondDecodeError(w, err)
		return
	}

	user, result, err := h.service.EditUser(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.respondServiceError(w, err, "edit user")
		return
	}
	if result == models.MutationSkipped {
		h.respondError(w, http.StatusNotFound, models.ErrUserNotFound.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, models.UserResponse{Message: "User updated successfully", User: user})
}

// DeleteUser handles DELETE /users/{id}
// @Summary Delete user
// @Description Remove a user. Its ID is never handed out again.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.MessageResponse "User deleted"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err, "delete user")
		return
	}
	if result == models.MutationSkipped {
		h.respondError(w, http.StatusNotFound, models.ErrUserNotFound.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, models.MessageResponse{Message: "User deleted successfully"})
}
