package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/sling-library/internal/cache"
	"github.com/BruksfildServices01/sling-library/internal/config"
	domain "github.com/BruksfildServices01/sling-library/internal/domain/auth"
	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/models"
	"github.com/BruksfildServices01/sling-library/internal/validators"
)

var ErrInvalidCredentials = httperr.ErrBusiness("invalid_credentials")

const minPasswordLength = 6

type SessionUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Roles []string  `json:"roles"`
}

type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      SessionUser `json:"user"`
}

// Service signs users in and out. Roles are looked up once per sign-in and
// carried in the token.
type Service struct {
	repo  domain.Repository
	cache cache.Cache
	cfg   *config.Config
	now   func() time.Time
}

func NewService(repo domain.Repository, c cache.Cache, cfg *config.Config) *Service {
	return &Service{repo: repo, cache: c, cfg: cfg, now: time.Now}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) SignUp(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)

	var ve httperr.ValidationError
	if !validators.IsEmailFormat(email) {
		ve.Add("email", "Invalid email address")
	}
	if len(password) < minPasswordLength {
		ve.Add("password", "Password must be at least 6 characters")
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}

	if s.cfg.VerifyEmailDomain && !validators.IsEmailDomainValid(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{Email: email, PasswordHash: string(hashed)}
	if err := s.repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}
	if err := s.repo.GrantRole(ctx, user.ID, domain.RoleUser); err != nil {
		return nil, err
	}

	return s.issue(ctx, &user)
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.repo.FindUserByEmail(ctx, normalizeEmail(email))
	if httperr.IsBusiness(err, "user_not_found") {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(ctx, user)
}

func (s *Service) issue(ctx context.Context, user *models.User) (*Session, error) {
	roles, err := s.repo.ListRoles(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	token, claims, err := domain.IssueToken(s.cfg.JWTSecret, user.ID, user.Email, roles, s.cfg.TokenTTL, s.now())
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      SessionUser{ID: user.ID, Email: user.Email, Roles: roles},
	}, nil
}

// SignOut revokes the token until it would have expired anyway.
func (s *Service) SignOut(ctx context.Context, claims *domain.Claims) error {
	ttl := time.Minute
	if claims.ExpiresAt != nil {
		if left := claims.ExpiresAt.Time.Sub(s.now()); left > 0 {
			ttl = left
		}
	}
	return s.cache.Set(ctx, cache.RevokedTokenKey(claims.ID), true, ttl)
}

// IsRevoked reports whether the token id was signed out. Cache errors count
// as not revoked.
func (s *Service) IsRevoked(ctx context.Context, jti string) bool {
	var revoked bool
	hit, err := s.cache.Get(ctx, cache.RevokedTokenKey(jti), &revoked)
	return err == nil && hit && revoked
}

// CurrentSession describes the signed-in user of claims.
func (s *Service) CurrentSession(ctx context.Context, claims *domain.Claims) (*SessionUser, error) {
	id, err := claims.UserID()
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return &SessionUser{ID: user.ID, Email: user.Email, Roles: claims.Roles}, nil
}

// ErrInvalidRole is returned when granting a role that does not exist.
var ErrInvalidRole = httperr.ErrBusiness("invalid_role")

// GrantRole gives role to an existing account. Granting a role the account
// already holds is a no-op.
func (s *Service) GrantRole(ctx context.Context, email, role string) (*models.User, error) {
	if !domain.IsRole(role) {
		return nil, ErrInvalidRole
	}

	user, err := s.repo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	already, err := s.repo.HasRole(ctx, user.ID, domain.Role(role))
	if err != nil {
		return nil, err
	}
	if !already {
		if err := s.repo.GrantRole(ctx, user.ID, domain.Role(role)); err != nil {
			return nil, err
		}
	}
	return user, nil
}
