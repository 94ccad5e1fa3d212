package handlers

import (
	"net/http"
	"strings"

	"walletsync/internal/token"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// Authenticate verifies the end-user bearer token and stashes the
// subject user id on the request context.
func Authenticate(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid authorization header"})
			return
		}
		userID, err := tokens.VerifyUserToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}
