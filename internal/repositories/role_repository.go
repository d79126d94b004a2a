package repositories

import (
	"context"
	"slices"
	"sync"

	"github.com/rbacdashboard/backend/internal/idgen"
	"github.com/rbacdashboard/backend/internal/models"
	"go.uber.org/zap"
)

// roleRepository keeps the role collection in memory, in insertion order.
// Roles cannot be deleted.
type roleRepository struct {
	mu     sync.RWMutex
	roles  []models.Role
	seed   []models.Role
	ids    idgen.Generator
	logger *zap.Logger
}

// NewRoleRepository creates a new in-memory role collection holding a copy of seed
func NewRoleRepository(seed []models.Role, ids idgen.Generator, logger *zap.Logger) *roleRepository {
	return &roleRepository{
		roles:  cloneRoles(seed),
		seed:   cloneRoles(seed),
		ids:    ids,
		logger: logger,
	}
}

// Create appends a role and assigns it a new unique ID
func (r *roleRepository) Create(_ context.Context, role *models.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.ids.NewID()
	for r.indexOf(id) >= 0 {
		r.logger.Warn("generated role id already taken", zap.String("id", id))
		id = r.ids.NewID()
	}
	role.ID = id
	r.roles = append(r.roles, role.Clone())

	return nil
}

// GetByID retrieves a copy of the role with the given ID
func (r *roleRepository) GetByID(_ context.Context, id string) (*models.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, models.ErrRoleNotFound
	}
	role := r.roles[i].Clone()
	return &role, nil
}

// GetAll retrieves a snapshot of all roles in insertion order
func (r *roleRepository) GetAll(_ context.Context) ([]models.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneRoles(r.roles), nil
}

// Update replaces the name and permissions of the role with the given ID.
// It reports false and changes nothing when no such role exists.
func (r *roleRepository) Update(_ context.Context, id string, role *models.Role) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	updated := role.Clone()
	updated.ID = id
	r.roles[i] = updated

	return true, nil
}

// Reset restores the collection to its seed
func (r *roleRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.roles = cloneRoles(r.seed)
	return nil
}

func (r *roleRepository) indexOf(id string) int {
	return slices.IndexFunc(r.roles, func(role models.Role) bool {
		return role.ID == id
	})
}

func cloneRoles(roles []models.Role) []models.Role {
	out := make([]models.Role, len(roles))
	for i, role := range roles {
		out[i] = role.Clone()
	}
	return out
}
