package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/sling-library/internal/config"
	"github.com/BruksfildServices01/sling-library/internal/domain/auth"
	"github.com/BruksfildServices01/sling-library/internal/httperr"
)

const (
	ContextUserID = "userID"
	ContextClaims = "claims"
	ContextRoles  = "roles"
)

// RevocationChecker reports tokens that were signed out before expiry.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) bool
}

func AuthMiddleware(cfg *config.Config, revocations RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Sign in to continue.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Sign in to continue.")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Your session is no longer valid.")
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			httperr.Unauthorized(c, "invalid_token_payload", "Your session is no longer valid.")
			c.Abort()
			return
		}

		if revocations != nil && revocations.IsRevoked(c.Request.Context(), claims.ID) {
			httperr.Unauthorized(c, "token_revoked", "You have signed out.")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextClaims, claims)
		c.Set(ContextRoles, claims.Roles)

		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles := c.GetStringSlice(ContextRoles)
		if !auth.HasRole(roles, role) {
			httperr.Forbidden(c, "forbidden", "You do not have access to this area.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActorID returns the signed-in user id, or nil on public routes.
func ActorID(c *gin.Context) *uuid.UUID {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

func ClaimsFrom(c *gin.Context) *auth.Claims {
	claims, _ := c.MustGet(ContextClaims).(*auth.Claims)
	return claims
}
