package memory

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/sling-library/internal/domain/auth"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

type UserRepository struct{ *Store }

func (r UserRepository) CreateUser(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return auth.ErrEmailTaken
		}
	}
	r.touch(&u.BaseModel, true)
	stored := *u
	stored.Roles = nil
	r.users[u.ID] = stored
	return nil
}

func (r UserRepository) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, auth.ErrUserNotFound
}

func (r UserRepository) GetUser(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return &u, nil
}

func (r UserRepository) ListRoles(_ context.Context, userID uuid.UUID) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roles := slices.Clone(r.roles[userID])
	slices.Sort(roles)
	return roles, nil
}

func (r UserRepository) HasRole(_ context.Context, userID uuid.UUID, role auth.Role) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Contains(r.roles[userID], string(role)), nil
}

func (r UserRepository) GrantRole(_ context.Context, userID uuid.UUID, role auth.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; !ok {
		return auth.ErrUserNotFound
	}
	if !slices.Contains(r.roles[userID], string(role)) {
		r.roles[userID] = append(r.roles[userID], string(role))
	}
	return nil
}

var _ auth.Repository = UserRepository{}
