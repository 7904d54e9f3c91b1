package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const CtxUserIDKey = "user_id"

// RequireAuth rejects requests without a valid, unexpired session cookie
// before any business logic runs. On success the user id is stored in the
// gin context under CtxUserIDKey.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(CookieName)
		if err != nil || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
			return
		}
		claims, err := ParseToken(secret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
