package handlers

import (
	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetUsers lists staff accounts. Admin only.
func GetUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("username ASC").Find(&users).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(200, users)
	}
}

func CreateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Username    string `json:"username" binding:"required"`
			Email       string `json:"email" binding:"omitempty,email"`
			Password    string `json:"password" binding:"required,min=8"`
			IsSuperuser bool   `json:"isSuperuser"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		user := models.User{
			Username:    input.Username,
			Email:       input.Email,
			Password:    input.Password,
			IsSuperuser: input.IsSuperuser,
		}
		if err := user.HashPassword(); err != nil {
			c.JSON(500, gin.H{"error": "Failed to hash password"})
			return
		}

		if err := db.Create(&user).Error; err != nil {
			c.JSON(400, gin.H{"error": "Failed to create user: username may already exist"})
			return
		}

		c.JSON(201, user)
	}
}

func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		var input struct {
			Username    string `json:"username" binding:"required"`
			Email       string `json:"email" binding:"omitempty,email"`
			Password    string `json:"password" binding:"omitempty,min=8"`
			IsSuperuser *bool  `json:"isSuperuser"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		user.Username = input.Username
		user.Email = input.Email
		if input.IsSuperuser != nil {
			user.IsSuperuser = *input.IsSuperuser
		}
		if input.Password != "" {
			user.Password = input.Password
			if err := user.HashPassword(); err != nil {
				c.JSON(500, gin.H{"error": "Failed to hash password"})
				return
			}
		}

		if err := db.Save(&user).Error; err != nil {
			c.JSON(400, gin.H{"error": "Failed to update user: username may already exist"})
			return
		}

		c.JSON(200, user)
	}
}

// DeleteUser removes a staff account. Superusers cannot be deleted.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		if user.IsSuperuser {
			c.JSON(403, gin.H{"error": "Cannot delete a superuser"})
			return
		}

		if err := db.Delete(&user).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete user"})
			return
		}

		c.JSON(200, gin.H{"message": "User deleted successfully"})
	}
}
