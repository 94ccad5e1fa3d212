package handlers

import (
	"net/http"
	"strings"

	"walletsync/internal/token"

	"github.com/gin-gonic/gin"
)

// InternalAuth guards the service-to-service surface. It checks the
// bearer token's signature and expiry against the shared internal
// secret; there is no per-call payload signing.
func InternalAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authorization header"})
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			return
		}
		if err := tokens.VerifyInternalToken(parts[1]); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired internal token"})
			return
		}
		c.Next()
	}
}
