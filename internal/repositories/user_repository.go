package repositories

import (
	"context"
	"slices"
	"sync"

	"github.com/rbacdashboard/backend/internal/idgen"
	"github.com/rbacdashboard/backend/internal/models"
	"go.uber.org/zap"
)

// userRepository keeps the user collection in memory, in insertion order.
// It lives as long as the process and starts from the seed it was created with.
type userRepository struct {
	mu     sync.RWMutex
	users  []models.User
	seed   []models.User
	ids    idgen.Generator
	logger *zap.Logger
}

// NewUserRepository creates a new in-memory user collection holding a copy of seed
func NewUserRepository(seed []models.User, ids idgen.Generator, logger *zap.Logger) *userRepository {
	return &userRepository{
		users:  slices.Clone(seed),
		seed:   slices.Clone(seed),
		ids:    ids,
		logger: logger,
	}
}

// Create appends a user and assigns it a new unique ID.
// Any ID already set on user is ignored.
func (r *userRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.ids.NewID()
	for r.indexOf(id) >= 0 {
		// Only reachable when seeded IDs overlap the generator's range
		r.logger.Warn("generated user id already taken", zap.String("id", id))
		id = r.ids.NewID()
	}
	user.ID = id
	r.users = append(r.users, *user)

	return nil
}

// GetByID retrieves a copy of the user with the given ID
func (r *userRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, models.ErrUserNotFound
	}
	user := r.users[i]
	return &user, nil
}

// GetAll retrieves a snapshot of all users in insertion order
func (r *userRepository) GetAll(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.users), nil
}

// Update replaces every field of the user with the given ID except the ID itself.
// It reports false and changes nothing when no such user exists.
func (r *userRepository) Update(_ context.Context, id string, user *models.User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	updated := *user
	updated.ID = id
	r.users[i] = updated

	return true, nil
}

// Delete removes the user with the given ID.
// It reports false when no such user exists.
func (r *userRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.users = slices.Delete(r.users, i, i+1)

	return true, nil
}

// Reset restores the collection to its seed.
// The ID generator is not rewound, so IDs handed out before the reset are never reused.
func (r *userRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = slices.Clone(r.seed)
	return nil
}

// indexOf returns the position of the user with the given ID or -1. Callers must hold the lock.
func (r *userRepository) indexOf(id string) int {
	return slices.IndexFunc(r.users, func(u models.User) bool {
		return u.ID == id
	})
}
