package middleware

import (
	"strings"

	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"github.com/TharunSree/taxi-fleet-backend/internal/services"
	"github.com/TharunSree/taxi-fleet-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const currentUserKey = "currentUser"

// AuthMiddleware validates the bearer token, rejects revoked tokens and
// resolves the full staff user row onto the request context. That user
// is the "current user" every audit entry is attributed to.
func AuthMiddleware(db *gorm.DB, tokens *services.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			c.JSON(401, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.JSON(401, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		if tokens != nil && tokens.IsRevoked(c.Request.Context(), tokenString) {
			c.JSON(401, gin.H{"error": "Token has been revoked"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(401, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		userID, ok := claims["id"].(float64)
		if !ok {
			c.JSON(401, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, uint(userID)).Error; err != nil {
			c.JSON(401, gin.H{"error": "User no longer exists"})
			c.Abort()
			return
		}

		c.Set("userId", user.ID)
		c.Set("username", user.Username)
		c.Set(currentUserKey, &user)
		c.Next()
	}
}

// CurrentUser returns the authenticated staff user for this request, or
// nil when the request carries no resolvable user.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// AdminOnly gates superuser-only views (action log, site settings,
// staff management).
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsSuperuser {
			c.JSON(403, gin.H{"error": "Superuser access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
