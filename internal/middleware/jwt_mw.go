package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"complaint_tracker/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey       = "authUser"
	AuthRoleKey       = "authRole"
	AuthIdentifierKey = "authIdentifier"
	AuthJTIKey        = "authJTI"
	AuthExpKey        = "authExp"
)

var (
	// tokenDenylist maps the JTI of a logged-out token to its original
	// expiry. In-memory only; a restart forgets past logouts.
	tokenDenylist = make(map[string]time.Time)
	denylistMutex = &sync.RWMutex{}
)

// DenylistToken records a JTI as logged out and prunes fully expired entries
func DenylistToken(jti string, expiresAt time.Time) {
	denylistMutex.Lock()
	defer denylistMutex.Unlock()

	tokenDenylist[jti] = expiresAt

	now := time.Now()
	for id, exp := range tokenDenylist {
		if now.After(exp) {
			delete(tokenDenylist, id)
		}
	}
}

// IsTokenDenylisted checks whether a JTI has been logged out and is still
// within its original validity window
func IsTokenDenylisted(jti string) bool {
	denylistMutex.RLock()
	defer denylistMutex.RUnlock()

	exp, found := tokenDenylist[jti]
	if !found {
		return false
	}
	return time.Now().Before(exp)
}

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		tokenString := parts[1]
		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if IsTokenDenylisted(claims.ID) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been logged out"})
			return
		}

		// Set principal information in context
		c.Set(AuthUserKey, claims.PrincipalID)
		c.Set(AuthRoleKey, claims.Role)
		c.Set(AuthIdentifierKey, claims.Identifier)
		c.Set(AuthJTIKey, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(AuthExpKey, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}
