package middleware

import (
	"net/http"
	"strings"

	"shipsy/internal/app/ds"

	"github.com/gin-gonic/gin"
)

// TokenVerifier validates a bearer credential into claims. Implemented by
// the repository (JWT signature + Redis session check).
type TokenVerifier interface {
	VerifyToken(token string) (*ds.JWTClaims, error)
}

// AuthMiddleware requires a valid token from the jwt cookie or the
// Authorization header and stores user_id/role in the gin context.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie("jwt")
		if err != nil {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"message": "Access denied. No token provided.",
				})
				return
			}
			if !strings.HasPrefix(authHeader, "Bearer ") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"message": "Invalid authorization header",
				})
				return
			}
			tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
		}

		claims, err := verifier.VerifyToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid or expired token",
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
