package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-system/internal/httperr"
	"github.com/BruksfildServices01/appointment-system/internal/models"
)

// RequireRoles aborts with 403 when the authenticated caller's role is
// not in the allowed set. It must run after AuthMiddleware.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFrom(c)
		if !ok {
			httperr.Unauthorized(c, "user_not_in_context", "user not in context")
			c.Abort()
			return
		}

		for _, role := range allowed {
			if caller.Role == role {
				c.Next()
				return
			}
		}

		httperr.Forbidden(c, "forbidden", "you do not have permission to perform this action")
		c.Abort()
	}
}
