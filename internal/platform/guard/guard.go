// Package guard provides the admin access-control middleware.
package guard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"clinic_backend/internal/feature/useradmin/domain"
	"clinic_backend/internal/feature/useradmin/domain/entity"
)

// ContextCaller is the gin context key holding the resolved admin caller.
const ContextCaller = "caller"

// TokenResolver resolves a bearer token to the caller's identity record.
// Interfaces are defined by the consumer (guard), not the provider.
type TokenResolver interface {
	UserFromToken(ctx context.Context, token string) (*entity.DirectoryUser, error)
}

// AdminRequired returns a gin middleware that restricts access to
// authenticated callers whose role metadata is exactly admin.
//
// When jwtSecret is non-empty the token signature is verified locally
// first, rejecting forgeries without a remote call; the remote resolution
// remains the source of truth for the caller's role.
func AdminRequired(resolver TokenResolver, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		if jwtSecret != "" {
			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				// Only HMAC is accepted; the auth service signs with a
				// shared secret.
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
		}

		caller, err := resolver.UserFromToken(c.Request.Context(), tokenStr)
		if err != nil {
			if errors.Is(err, domain.ErrServerMisconfigured) {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
				return
			}
			slog.Warn("token resolution failed", "error", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if caller.Metadata.Role != entity.RoleAdmin {
			slog.Warn("non-admin caller rejected",
				"user_id", caller.ID, "role", caller.Metadata.Role, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}

		// Kept for audit logging by downstream handlers.
		c.Set(ContextCaller, caller)
		c.Next()
	}
}
