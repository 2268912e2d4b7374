package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moviecatalog/internal/pkg/response"
)

// RequireAnyRole lets the request through when the verified identity holds
// at least one of the named roles. A valid identity without a sufficient
// role is a 403, distinct from the 401 the auth gate produces.
func RequireAnyRole(required ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rolesVal, exists := c.Get("roles")
		if !exists {
			response.AbortError(c, http.StatusUnauthorized, "Unauthorized", "No roles found in token")
			return
		}

		roles, ok := rolesVal.([]string)
		if !ok {
			response.AbortError(c, http.StatusUnauthorized, "Unauthorized", "No roles found in token")
			return
		}

		for _, have := range roles {
			for _, want := range required {
				if have == want {
					c.Next()
					return
				}
			}
		}

		response.AbortError(c, http.StatusForbidden, "Forbidden", "Access denied: insufficient permissions")
	}
}

// AdminOnly requires the ADMIN role.
func AdminOnly() gin.HandlerFunc {
	return RequireAnyRole("ADMIN")
}
