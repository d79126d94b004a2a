package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rbacdashboard/backend/internal/models"
	"github.com/rbacdashboard/backend/internal/pagination"
	"go.uber.org/zap"
)

// RoleRepository is the interface that wraps methods for the role collection
type RoleRepository interface {
	// Method Create appends a new role to the collection and assigns it a fresh unique ID.
	Create(ctx context.Context, role *models.Role) error
	// Method GetByID retrieves a role by ID.
	//
	// If role with such ID does not exist, models.ErrRoleNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, id string) (*models.Role, error)
	// Method GetAll retrieves all roles in insertion order.
	GetAll(ctx context.Context) ([]models.Role, error)
	// Method Update replaces the name and permissions of the role with the given ID.
	//
	// Returns false when no such role exists.
	Update(ctx context.Context, id string, role *models.Role) (bool, error)
	// Method Reset restores the collection to its seed.
	Reset(ctx context.Context) error
}

type roleService struct {
	repo   RoleRepository
	logger *zap.Logger
}

// NewRoleService creates a new role registry service
func NewRoleService(repo RoleRepository, logger *zap.Logger) *roleService {
	return &roleService{
		repo:   repo,
		logger: logger,
	}
}

// AddRole validates the request and appends a new role.
// Permissions must be a non-empty set drawn from models.PermissionOptions.
func (s *roleService) AddRole(ctx context.Context, req *models.CreateRoleRequest) (*models.Role, error) {
	role := models.Role{
		Name:        req.Name,
		Permissions: slices.Clone(req.Permissions),
	}

	if err := validateRecord(role); err != nil {
		s.logger.Warn("rejected role", zap.Error(err))
		return nil, err
	}

	if err := s.repo.Create(ctx, &role); err != nil {
		s.logger.Error("failed to create role", zap.Error(err))
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	s.logger.Info("role added", zap.String("id", role.ID), zap.String("name", role.Name))
	return &role, nil
}

// EditRole applies the provided name and/or permissions to the role with the given ID.
// An unknown ID is not an error and yields models.MutationSkipped.
func (s *roleService) EditRole(ctx context.Context, id string, req *models.UpdateRoleRequest) (*models.Role, models.MutationResult, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrRoleNotFound) {
			s.logger.Debug("edit skipped, role not found", zap.String("id", id))
			return nil, models.MutationSkipped, nil
		}
		return nil, "", fmt.Errorf("failed to get role: %w", err)
	}

	merged := req.Apply(*existing)
	if err := validateRecord(merged); err != nil {
		s.logger.Warn("rejected role edit", zap.String("id", id), zap.Error(err))
		return nil, "", err
	}

	updated, err := s.repo.Update(ctx, id, &merged)
	if err != nil {
		s.logger.Error("failed to update role", zap.String("id", id), zap.Error(err))
		return nil, "", fmt.Errorf("failed to update role: %w", err)
	}
	if !updated {
		return nil, models.MutationSkipped, nil
	}

	s.logger.Info("role updated", zap.String("id", id))
	return &merged, models.MutationApplied, nil
}

// GetRole retrieves a role by ID
func (s *roleService) GetRole(ctx context.Context, id string) (*models.Role, error) {
	role, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return role, nil
}

// SearchRoles returns the roles whose name, or any of whose permissions, contains query, ignoring case.
// Insertion order is preserved and an empty query returns every role.
func (s *roleService) SearchRoles(ctx context.Context, query string) ([]models.Role, error) {
	roles, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to get roles", zap.Error(err))
		return nil, fmt.Errorf("failed to get roles: %w", err)
	}

	matched := make([]models.Role, 0, len(roles))
	for _, role := range roles {
		if containsFold(role.Name, query) || slices.ContainsFunc(role.Permissions, func(p models.Permission) bool {
			return containsFold(string(p), query)
		}) {
			matched = append(matched, role)
		}
	}

	return matched, nil
}

// ListRoles searches, optionally sorts by name and paginates roles
func (s *roleService) ListRoles(ctx context.Context, params models.ListParams) (*pagination.Page[models.Role], error) {
	roles, err := s.SearchRoles(ctx, params.Search)
	if err != nil {
		return nil, err
	}

	if params.Sort != "" {
		key, ok := roleSortKeys[params.Sort]
		if !ok {
			return nil, fmt.Errorf("%w: invalid sort field: %s, must be 'name'", ErrInvalidListParams, params.Sort)
		}
		if err := sortByKey(roles, key, params.Order); err != nil {
			return nil, err
		}
	}

	page := pagination.NewPage(roles, params.Page, params.PageSize)
	return &page, nil
}

// Permissions returns the fixed permission vocabulary
func (s *roleService) Permissions() []models.Permission {
	return models.PermissionOptions()
}

// Reset restores the role collection to its seed
func (s *roleService) Reset(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		s.logger.Error("failed to reset roles", zap.Error(err))
		return fmt.Errorf("failed to reset roles: %w", err)
	}
	s.logger.Info("roles reset to seed")
	return nil
}
