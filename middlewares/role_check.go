package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gymsupply/pos-app/utils"
)

// RoleAllowed reports whether a role is in the allowed set. Kept as a pure
// function so route policies stay testable without a request context.
func RoleAllowed(role string, allowed []string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// RequireRoles guards a route group with a declarative role allow-list.
// AuthMiddleware must run first so the role is present in the context.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		role, ok := userRole.(string)
		if !ok || !RoleAllowed(role, roles) {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("access restricted to: %v", roles))
			c.Abort()
			return
		}

		c.Next()
	}
}
