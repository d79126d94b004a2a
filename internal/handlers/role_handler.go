package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rbacdashboard/backend/internal/models"
	"github.com/rbacdashboard/backend/internal/pagination"
	"go.uber.org/zap"
)

// RoleService is the interface that wraps methods for the role registry
type RoleService interface {
	// Method AddRole validates the request and appends a new role with a fresh ID.
	//
	// Permissions must be a non-empty set of known permissions, otherwise *services.ValidationError will be returned.
	AddRole(ctx context.Context, req *models.CreateRoleRequest) (*models.Role, error)
	// Method EditRole applies the non-nil request fields to the role with the given ID.
	//
	// If no role has that ID, models.MutationSkipped will be returned together with "nil" role and error.
	EditRole(ctx context.Context, id string, req *models.UpdateRoleRequest) (*models.Role, models.MutationResult, error)
	// Method GetRole retrieves a role by ID.
	//
	// If role with such ID does not exist, an error wrapping models.ErrRoleNotFound will be returned.
	GetRole(ctx context.Context, id string) (*models.Role, error)
	// Method ListRoles searches, sorts and paginates roles.
	//
	// Search matches the role name or any permission. "params.Sort" may only be "name".
	ListRoles(ctx context.Context, params models.ListParams) (*pagination.Page[models.Role], error)
	// Method Permissions returns the fixed permission vocabulary.
	Permissions() []models.Permission
}

// RoleHandler handles HTTP requests for the role registry
type RoleHandler struct {
	BaseHandler
	service         RoleService
	defaultPageSize int
	maxPageSize     int
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(svc RoleService, logger *zap.Logger, defaultPageSize, maxPageSize int) *RoleHandler {
	return &RoleHandler{
		BaseHandler:     BaseHandler{logger: logger},
		service:         svc,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// RegisterRoutes registers all role handler routes.
// Roles cannot be deleted.
func (h *RoleHandler) RegisterRoutes(r chi.Router) {
	r.Route("/roles", func(r chi.Router) {
		r.Get("/", h.ListRoles)
		r.Post("/", h.AddRole)
		r.Get("/{id}", h.GetRole)
		r.Patch("/{id}", h.EditRole)
		r.Put("/{id}", h.EditRole)
	})
	r.Get("/permissions", h.GetPermissions)
}

// ListRoles handles GET /roles
// @Summary List roles
// @Description Get a page of roles, optionally filtered by a case-insensitive search over name and permissions
// @Tags roles
// @Produce json
// @Param search query string false "Substring to search for"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Items per page (default: 10)"
// @Param sort query string false "Sort field" Enums(name)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} models.RolePage "Page of roles"
// @Failure 400 {object} models.ErrorResponse "Invalid sort parameters"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /roles [get]
func (h *RoleHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	params := parseListParams(r, h.defaultPageSize, h.maxPageSize)

	page, err := h.service.ListRoles(r.Context(), params)
	if err != nil {
		h.respondServiceError(w, err, "list roles")
		return
	}

	h.respondJSON(w, http.StatusOK, page)
}

// GetRole handles GET /roles/{id}
// @Summary Get role
// @Tags roles
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} models.Role "Role"
// @Failure 404 {object} models.ErrorResponse "Role not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /roles/{id} [get]
func (h *RoleHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	role, err := h.service.GetRole(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err, "get role")
		return
	}

	h.respondJSON(w, http.StatusOK, role)
}

// AddRole handles POST /roles
// @Summary Add role
// @Tags roles
// @Accept json
// @Produce json
// @Param request body models.CreateRoleRequest true "Role data"
// @Success 201 {object} models.RoleResponse "Role added"
// @Failure 400 {object} models.ErrorResponse "Invalid request body or validation failed"
// @Failure 413 {object} models.ErrorResponse "Request body too large"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /roles [post]
func (h *RoleHandler) AddRole(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondDecodeError(w, err)
		return
	}

	role, err := h.service.AddRole(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err, "add role")
		return
	}

	h.respondJSON(w, http.StatusCreated, models.RoleResponse{Message: "Role added successfully", Role: role})
}

// EditRole handles PATCH and PUT /roles/{id}
// @Summary Edit role
// @Tags roles
// @Accept json
// @Produce json
// @Param id path string true "Role ID"
// @Param request body models.UpdateRoleRequest true "Fields to change"
// @Success 200 {object} models.RoleResponse "Role updated"
// @Failure 400 {object} models.ErrorResponse "Invalid request body or validation failed"
// @Failure 404 {object} models.ErrorResponse "Role not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /roles/{id} [patch]
// @Router /roles/{id} [put]
func (h *RoleHandler) EditRole(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondDecodeError(w, err)
		return
	}

	role, result, err := h.service.EditRole(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.respondServiceError(w, err, "edit role")
		return
	}
	if result == models.MutationSkipped {
		h.respondError(w, http.StatusNotFound, models.ErrRoleNotFound.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, models.RoleResponse{Message: "Role updated successfully", Role: role})
}

// GetPermissions handles GET /permissions
// @Summary List permissions
// @Description Get the fixed vocabulary of permissions a role may hold
// @Tags roles
// @Produce json
// @Success 200 {array} string "Permissions"
// @Router /permissions [get]
func (h *RoleHandler) GetPermissions(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.Permissions())
}
