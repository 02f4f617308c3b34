package middleware

import (
	"net/http"
	"strings"

	"grahini/internal/modules/auth"

	"github.com/gin-gonic/gin"
)

// TokenAuth gates admin endpoints behind a session token. The token may
// arrive as a "token" query parameter (the original client passes it that
// way) or as a Bearer Authorization header. The bound admin email ends up
// in the context under "admin_email".
func TokenAuth(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			h := c.GetHeader("Authorization")
			if strings.HasPrefix(h, "Bearer ") {
				token = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
			}
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Missing token",
				},
			})
			return
		}

		email, err := svc.Authorize(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid token",
				},
			})
			return
		}

		c.Set("admin_email", email)

		c.Next()
	}
}
