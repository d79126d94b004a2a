package repositories

import (
	"context"
	"testing"

	"github.com/rbacdashboard/backend/internal/idgen"
	"github.com/rbacdashboard/backend/internal/models"
	"github.com/rbacdashboard/backend/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// fixedGenerator returns the given IDs in order
type fixedGenerator struct {
	ids []string
}

func (g *fixedGenerator) NewID() string {
	id := g.ids[0]
	g.ids = g.ids[1:]
	return id
}

func newTestUserRepository(t *testing.T) *userRepository {
	t.Helper()
	data := seed.Default()
	return NewUserRepository(data.Users, idgen.NewSequence(idgen.MaxNumeric(data.UserIDs()...)), zaptest.NewLogger(t))
}

func TestUserRepository_Create(t *testing.T) {
	repo := newTestUserRepository(t)
	ctx := context.Background()

	user := &models.User{
		Username: "carol",
		Email:    "carol@x.com",
		Role:     "content_editor",
		Status:   models.UserStatusActive,
	}
	err := repo.Create(ctx, user)

	require.NoError(t, err)
	assert.Equal(t, "3", user.ID)

	users, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, *user, users[2])
}

func TestUserRepository_Create_IgnoresProvidedID(t *testing.T) {
	repo := newTestUserRepository(t)

	user := &models.User{ID: "1", Username: "dup"}
	require.NoError(t, repo.Create(context.Background(), user))

	assert.Equal(t, "3", user.ID)
}

func TestUserRepository_Create_SkipsTakenID(t *testing.T) {
	data := seed.Default()
	repo := NewUserRepository(data.Users, &fixedGenerator{ids: []string{"2", "1", "9"}}, zaptest.NewLogger(t))

	user := &models.User{Username: "carol"}
	require.NoError(t, repo.Create(context.Background(), user))

	assert.Equal(t, "9", user.ID)
}

func TestUserRepository_Create_NoReuseAfterDelete(t *testing.T) {
	repo := newTestUserRepository(t)
	ctx := context.Background()

	first := &models.User{Username: "first"}
	require.NoError(t, repo.Create(ctx, first))
	deleted, err := repo.Delete(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	second := &models.User{Username: "second"}
	require.NoError(t, repo.Create(ctx, second))

	assert.NotEqual(t, first.ID, second.ID)
	users, err := repo.GetAll(ctx)
	require.NoError(t, err)
	ids := make(map[string]bool)
	for _, u := range users {
		assert.False(t, ids[u.ID], "duplicate id %s", u.ID)
		ids[u.ID] = true
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	repo := newTestUserRepository(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		id            string
		expectedError error
		expectedName  string
	}{
		{name: "existing user", id: "2", expectedName: "editor"},
		{name: "missing user", id: "42", expectedError: models.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := repo.GetByID(ctx, tt.id)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, user.Username)
		})
	}
}

func TestUserRepository_GetAll_ReturnsSnapshot(t *testing.T) {
	repo := newTestUserRepository(t)
	ctx := context.Background()

	users, err := repo.GetAll(ctx)
	require.NoError(t, err)
	users[0].Username = "mutated"

	again, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", again[0].Username)
}

func TestUserRepository_Update(t *testing.T) {
	repo := newTestUserRepository(t)
	ctx := context.Background()

	updated, err := repo.Update(ctx, "1", &models.User{
		ID:       "999",
		Username: "root",
		Email:    "root@example.com",
		Role:     "super_admin",
		Status:   models.UserStatusInactive,
	})

	require.NoError(t, err)
	assert.True(t, updated)
	user, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, "root", user.Username)
	assert.Equal(t, models.UserStatusInactive, user.Status)

	_, err = repo.GetByID(ctx, "999")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserRepository_Update_Missing(t *testing.T) {
	repo := newTestUserRepository(t)
	ctx := context.Background()
	before, _ := repo.GetAll(ctx)

	updated, err := repo.Update(ctx, "42", &models.User{Username: "ghost"})

	require.NoError(t, err)
	assert.False(t, updated)
	after, _ := repo.GetAll(ctx)
	assert.Equal(t, before, after)
}

func TestUserRepository_Delete(t *testing.T) {
	repo := newTestUserRepository(t)
	ctx := context.Background()

	deleted, err := repo.Delete(ctx, "1")
	require.NoError(t, err)
	assert.True(t, deleted)

	users, _ := repo.GetAll(ctx)
	require.Len(t, users, 1)
	assert.Equal(t, "editor", users[0].Username)

	deleted, err = repo.Delete(ctx, "1")
	require.NoError(t, err)
	assert.False(t, deleted)

	users, _ = repo.GetAll(ctx)
	assert.Len(t, users, 1)
}

func TestUserRepository_Reset(t *testing.T) {
	repo := newTestUserRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "carol"}))
	_, err := repo.Delete(ctx, "1")
	require.NoError(t, err)

	require.NoError(t, repo.Reset(ctx))

	users, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed.Default().Users, users)

	user := &models.User{Username: "dave"}
	require.NoError(t, repo.Create(ctx, user))
	assert.Equal(t, "4", user.ID)
}
