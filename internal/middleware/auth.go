// Package middleware holds the request guards sitting between the
// router and the handlers.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abhi1440/RateMyMovieAPP/internal/domain"
	"github.com/abhi1440/RateMyMovieAPP/internal/service"
	"github.com/abhi1440/RateMyMovieAPP/pkg/response"
)

// Context keys set by Authenticate.
const (
	ContextClaimsKey = "claims"
	ContextUserIDKey = "user_id"
)

// Authenticate extracts the session token from the cookie (or a Bearer
// header for non-browser clients), verifies it and attaches the claims
// to the request context. Requests without a valid token never reach
// the handler.
func Authenticate(authService service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
				token = strings.TrimPrefix(header, "Bearer ")
			}
		}
		if token == "" {
			response.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextClaimsKey, claims)
		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// RequireAdmin rejects authenticated identities without the admin flag.
// Must be registered after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}
		if !claims.IsAdmin {
			response.Forbidden(c, "Admin privileges required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetClaims returns the claims attached by Authenticate, or nil
func GetClaims(c *gin.Context) *domain.Claims {
	value, exists := c.Get(ContextClaimsKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*domain.Claims)
	if !ok {
		return nil
	}
	return claims
}
