package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/sling-library/internal/cache"
	"github.com/BruksfildServices01/sling-library/internal/config"
	domain "github.com/BruksfildServices01/sling-library/internal/domain/auth"
	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/infra/memory"
)

func newService() *Service {
	cfg := &config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour}
	return NewService(memory.NewStore().Users(), cache.NewMemoryCache(), cfg)
}

func TestSignUpThenSignIn(t *testing.T) {
	s := newService()
	ctx := context.Background()

	up, err := s.SignUp(ctx, " Owner@SherylSlings.in ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "owner@sherylslings.in", up.User.Email)
	assert.Equal(t, []string{"user"}, up.User.Roles)

	_, err = s.SignUp(ctx, "owner@sherylslings.in", "another")
	assert.True(t, httperr.IsBusiness(err, "email_taken"))

	in, err := s.SignIn(ctx, "owner@sherylslings.in", "secret1")
	require.NoError(t, err)
	claims, err := domain.ParseToken("test-secret", in.Token)
	require.NoError(t, err)
	assert.False(t, domain.HasRole(claims.Roles, domain.RoleAdmin))

	_, err = s.SignIn(ctx, "owner@sherylslings.in", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.SignIn(ctx, "nobody@sherylslings.in", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUpValidation(t *testing.T) {
	_, err := newService().SignUp(context.Background(), "nope", "123")
	ve, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "password")
}

func TestGrantRoleEmbedsRoleOnNextSignIn(t *testing.T) {
	s := newService()
	ctx := context.Background()

	_, err := s.SignUp(ctx, "admin@sherylslings.in", "secret1")
	require.NoError(t, err)

	_, err = s.GrantRole(ctx, "admin@sherylslings.in", "admin")
	require.NoError(t, err)
	_, err = s.GrantRole(ctx, "admin@sherylslings.in", "admin")
	require.NoError(t, err)

	in, err := s.SignIn(ctx, "admin@sherylslings.in", "secret1")
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "user"}, in.User.Roles)
}

func TestSignOutRevokesToken(t *testing.T) {
	s := newService()
	ctx := context.Background()

	up, err := s.SignUp(ctx, "a@sherylslings.in", "secret1")
	require.NoError(t, err)
	claims, err := domain.ParseToken("test-secret", up.Token)
	require.NoError(t, err)

	assert.False(t, s.IsRevoked(ctx, claims.ID))
	require.NoError(t, s.SignOut(ctx, claims))
	assert.True(t, s.IsRevoked(ctx, claims.ID))

	me, err := s.CurrentSession(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, "a@sherylslings.in", me.Email)
}

func TestGrantRoleRejectsUnknownRole(t *testing.T) {
	s := newService()
	ctx := context.Background()

	_, err := s.SignUp(ctx, "staff@sherylslings.in", "secret1")
	require.NoError(t, err)

	_, err = s.GrantRole(ctx, "staff@sherylslings.in", "superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)

	in, err := s.SignIn(ctx, "staff@sherylslings.in", "secret1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user"}, in.User.Roles)
}
