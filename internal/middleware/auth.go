package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "auth_token"

const userIDContextKey = "user_id"

// TokenVerifier validates a session token and returns the user id it was
// issued to. Implemented by auth.Service.
type TokenVerifier interface {
	VerifyToken(tokenString string) (int, error)
}

// AuthMiddleware guards protected routes. A missing cookie is 403 (the
// request never authenticated), an invalid or expired token is 401.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil || tokenString == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "No token provided"})
			c.Abort()
			return
		}

		userID, err := verifier.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(userIDContextKey, userID)
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user id, or 0 when the
// request did not pass AuthMiddleware.
func UserIDFromContext(c *gin.Context) int {
	value, ok := c.Get(userIDContextKey)
	if !ok {
		return 0
	}
	userID, ok := value.(int)
	if !ok {
		return 0
	}
	return userID
}
