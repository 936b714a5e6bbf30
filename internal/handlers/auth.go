package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/TharunSree/taxi-fleet-backend/internal/audit"
	"github.com/TharunSree/taxi-fleet-backend/internal/middleware"
	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"github.com/TharunSree/taxi-fleet-backend/internal/services"
	"github.com/TharunSree/taxi-fleet-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(db *gorm.DB, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if result := db.Where("username = ?", input.Username).First(&user); result.Error != nil {
			c.JSON(401, gin.H{"error": "Invalid credentials"})
			return
		}

		if err := user.CheckPassword(input.Password); err != nil {
			c.JSON(401, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := utils.GenerateToken(&user)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate token"})
			return
		}

		rec.Session(&user, fmt.Sprintf("User logged in from IP address: %s", c.ClientIP()))

		c.JSON(200, gin.H{
			"token": token,
			"user": gin.H{
				"id":          user.ID,
				"username":    user.Username,
				"email":       user.Email,
				"isSuperuser": user.IsSuperuser,
			},
		})
	}
}

// Logout revokes the presented token and records the session end.
func Logout(rec *audit.Recorder, tokens *services.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		if tokens != nil {
			authHeader := c.GetHeader("Authorization")
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				if err := tokens.Revoke(c.Request.Context(), parts[1], utils.TokenLifetime); err != nil {
					c.JSON(500, gin.H{"error": "Failed to revoke token"})
					return
				}
			}
		}

		rec.Session(user, fmt.Sprintf("User logged out from IP address: %s", c.ClientIP()))

		c.JSON(200, gin.H{"message": "Logged out successfully", "time": time.Now()})
	}
}
