package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-system/internal/auth"
	"github.com/BruksfildServices01/appointment-system/internal/httperr"
)

const ContextCaller = "caller"

// AuthMiddleware extracts the bearer token, decodes it and stores the
// verified caller on the request context. Role checks happen separately
// in RequireRoles.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := tokens.Decode(parts[1])
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextCaller, claims)
		c.Next()
	}
}

// CallerFrom returns the verified caller set by AuthMiddleware.
func CallerFrom(c *gin.Context) (*auth.Claims, bool) {
	val, exists := c.Get(ContextCaller)
	if !exists {
		return nil, false
	}
	claims, ok := val.(*auth.Claims)
	return claims, ok
}
