package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

var (
	ErrUserNotFound = httperr.ErrBusiness("user_not_found")
	ErrEmailTaken   = httperr.ErrBusiness("email_taken")
)

type Repository interface {
	// CreateUser returns ErrEmailTaken when the address is registered.
	CreateUser(ctx context.Context, u *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)

	ListRoles(ctx context.Context, userID uuid.UUID) ([]string, error)
	HasRole(ctx context.Context, userID uuid.UUID, role Role) (bool, error)
	GrantRole(ctx context.Context, userID uuid.UUID, role Role) error
}
