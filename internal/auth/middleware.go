package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"movievault/internal/authz"
)

const identityKey = "identity"

// APIKey returns a middleware enforcing the static service key carried in
// the X-API-Key header.
func APIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-API-Key") != key {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid or missing API key"})
			return
		}
		c.Next()
	}
}

// JWT returns a middleware that validates the bearer token and places the
// verified identity in the context. A token carrying an unknown role name is
// malformed input, not a denial.
func JWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader("Authorization")
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr = strings.TrimSpace(strings.TrimPrefix(tokenStr, "Bearer "))

		token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		claims, ok := token.Claims.(*Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}

		role, err := authz.ParseRole(claims.Role)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unknown role in token"})
			return
		}

		c.Set(identityKey, authz.Identity{UserID: claims.UserID, Role: role})
		c.Next()
	}
}

// IdentityFrom pulls the verified identity set by the JWT middleware.
func IdentityFrom(c *gin.Context) (authz.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return authz.Identity{}, false
	}
	ident, ok := v.(authz.Identity)
	return ident, ok
}
