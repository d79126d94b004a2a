package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rbacdashboard/backend/internal/models"
	"github.com/rbacdashboard/backend/internal/pagination"
	"go.uber.org/zap"
)

// UserRepository is the interface that wraps methods for the user collection
type UserRepository interface {
	// Method Create appends a new user to the collection.
	//
	// The repository assigns a fresh unique ID to "user"; any ID set by the caller is ignored.
	Create(ctx context.Context, user *models.User) error
	// Method GetByID retrieves a user by ID.
	//
	// If user with such ID does not exist, models.ErrUserNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Method GetAll retrieves all users in insertion order.
	GetAll(ctx context.Context) ([]models.User, error)
	// Method Update replaces all fields of the user with the given ID except the ID.
	//
	// Returns false when no such user exists; the collection is not changed in that case.
	Update(ctx context.Context, id string, user *models.User) (bool, error)
	// Method Delete removes the user with the given ID.
	//
	// Returns false when no such user exists.
	Delete(ctx context.Context, id string) (bool, error)
	// Method Reset restores the collection to its seed.
	Reset(ctx context.Context) error
}

type userService struct {
	repo   UserRepository
	logger *zap.Logger
}

// NewUserService creates a new user registry service
func NewUserService(repo UserRepository, logger *zap.Logger) *userService {
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

// AddUser validates the request and appends a new user.
//
// Status defaults to "active". Usernames and emails are not required to be unique.
func (s *userService) AddUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
		Status:   req.Status,
	}
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}

	if err := validateRecord(user); err != nil {
		s.logger.Warn("rejected user", zap.Error(err))
		return nil, err
	}

	if err := s.repo.Create(ctx, &user); err != nil {
		s.logger.Error("failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user added", zap.String("id", user.ID), zap.String("username", user.Username))
	return &user, nil
}

// EditUser applies the non-nil fields of req to the user with the given ID.
//
// An unknown ID is not an error: nothing changes and models.MutationSkipped is returned.
// The merged record is validated as a whole before it is stored.
func (s *userService) EditUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, models.MutationResult, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			s.logger.Debug("edit skipped, user not found", zap.String("id", id))
			return nil, models.MutationSkipped, nil
		}
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}

	merged := req.Apply(*existing)
	if err := validateRecord(merged); err != nil {
		s.logger.Warn("rejected user edit", zap.String("id", id), zap.Error(err))
		return nil, "", err
	}

	updated, err := s.repo.Update(ctx, id, &merged)
	if err != nil {
		s.logger.Error("failed to update user", zap.String("id", id), zap.Error(err))
		return nil, "", fmt.Errorf("failed to update user: %w", err)
	}
	// The user may have been deleted between the read and the write
	if !updated {
		return nil, models.MutationSkipped, nil
	}

	s.logger.Info("user updated", zap.String("id", id))
	return &merged, models.MutationApplied, nil
}

// DeleteUser removes the user with the given ID.
// An unknown ID is not an error and yields models.MutationSkipped.
func (s *userService) DeleteUser(ctx context.Context, id string) (models.MutationResult, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete user", zap.String("id", id), zap.Error(err))
		return "", fmt.Errorf("failed to delete user: %w", err)
	}
	if !deleted {
		s.logger.Debug("delete skipped, user not found", zap.String("id", id))
		return models.MutationSkipped, nil
	}

	s.logger.Info("user deleted", zap.String("id", id))
	return models.MutationApplied, nil
}

// GetUser retrieves a user by ID
func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// SearchUsers returns the users whose username, email or role contains query, ignoring case.
// Insertion order is preserved and an empty query returns every user.
func (s *userService) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to get users", zap.Error(err))
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	matched := make([]models.User, 0, len(users))
	for _, user := range users {
		if containsFold(user.Username, query) ||
			containsFold(user.Email, query) ||
			containsFold(user.Role, query) {
			matched = append(matched, user)
		}
	}

	return matched, nil
}

// ListUsers searches, optionally sorts and paginates users.
//
// "params.Sort" must be empty, "username", "email" or "role".
// "params.Page" and "params.PageSize" are expected to be normalized by the caller.
func (s *userService) ListUsers(ctx context.Context, params models.ListParams) (*pagination.Page[models.User], error) {
	users, err := s.SearchUsers(ctx, params.Search)
	if err != nil {
		return nil, err
	}

	if params.Sort != "" {
		key, ok := userSortKeys[params.Sort]
		if !ok {
			return nil, fmt.Errorf("%w: invalid sort field: %s, must be 'username', 'email' or 'role'", ErrInvalidListParams, params.Sort)
		}
		if err := sortByKey(users, key, params.Order); err != nil {
			return nil, err
		}
	}

	page := pagination.NewPage(users, params.Page, params.PageSize)
	return &page, nil
}

// Reset restores the user collection to its seed
func (s *userService) Reset(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		s.logger.Error("failed to reset users", zap.Error(err))
		return fmt.Errorf("failed to reset users: %w", err)
	}
	s.logger.Info("users reset to seed")
	return nil
}
