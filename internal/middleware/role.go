package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole admits the request only when AuthMiddleware stored one of
// the allowed roles in the context. Keeps the reference-publishing
// routes admin-only.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("userRole")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role missing"})
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
