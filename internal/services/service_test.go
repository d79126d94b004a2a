package services

import (
	"context"
	"testing"

	"github.com/rbacdashboard/backend/internal/idgen"
	"github.com/rbacdashboard/backend/internal/models"
	"github.com/rbacdashboard/backend/internal/repositories"
	"github.com/rbacdashboard/backend/internal/seed"
	"go.uber.org/zap/zaptest"
)

// newSeededUserService creates a user service backed by the in-memory repository and the default seed
func newSeededUserService(t *testing.T) *userService {
	t.Helper()
	logger := zaptest.NewLogger(t)
	data := seed.Default()
	repo := repositories.NewUserRepository(data.Users, idgen.NewSequence(idgen.MaxNumeric(data.UserIDs()...)), logger)
	return NewUserService(repo, logger)
}

// newSeededRoleService creates a role service backed by the in-memory repository and the default seed
func newSeededRoleService(t *testing.T) *roleService {
	t.Helper()
	logger := zaptest.NewLogger(t)
	data := seed.Default()
	repo := repositories.NewRoleRepository(data.Roles, idgen.NewSequence(idgen.MaxNumeric(data.RoleIDs()...)), logger)
	return NewRoleService(repo, logger)
}

func usernames(users []models.User) []string {
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Username
	}
	return names
}

func roleNames(roles []models.Role) []string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.Name
	}
	return names
}

func ptr[T any](v T) *T {
	return &v
}

func mustGetAllUsers(t *testing.T, svc *userService) []models.User {
	t.Helper()
	users, err := svc.SearchUsers(context.Background(), "")
	if err != nil {
		t.Fatalf("failed to list users: %v", err)
	}
	return users
}
