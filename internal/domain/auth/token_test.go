package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseToken(t *testing.T) {
	id := uuid.New()
	now := time.Now()

	signed, issued, err := IssueToken("secret", id, "admin@sherylslings.in", []string{"admin"}, time.Hour, now)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)

	claims, err := ParseToken("secret", signed)
	require.NoError(t, err)

	got, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.Equal(t, issued.ID, claims.ID)
	assert.True(t, HasRole(claims.Roles, RoleAdmin))
	assert.False(t, HasRole(claims.Roles, RoleUser))
}

func TestParseTokenRejectsWrongSecretAndExpiry(t *testing.T) {
	signed, _, err := IssueToken("secret", uuid.New(), "a@b.in", nil, time.Hour, time.Now())
	require.NoError(t, err)

	_, err = ParseToken("other", signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, _, err := IssueToken("secret", uuid.New(), "a@b.in", nil, time.Hour, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	_, err = ParseToken("secret", expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken("secret", "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
