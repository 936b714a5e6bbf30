package handlers

import (
	"errors"

	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// loadSiteConfiguration fetches the single settings row, creating it
// with defaults on first access.
func loadSiteConfiguration(db *gorm.DB) (*models.SiteConfiguration, error) {
	var siteConfig models.SiteConfiguration
	err := db.First(&siteConfig, models.SiteConfigurationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		siteConfig = models.SiteConfiguration{
			EmailPort:   587,
			EmailUseTLS: true,
		}
		siteConfig.ID = models.SiteConfigurationID
		if err := db.Create(&siteConfig).Error; err != nil {
			return nil, err
		}
		return &siteConfig, nil
	}
	if err != nil {
		return nil, err
	}
	return &siteConfig, nil
}

// GetSiteSettings returns the site configuration. Admin only.
func GetSiteSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		siteConfig, err := loadSiteConfiguration(db)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to load site settings"})
			return
		}

		c.JSON(200, siteConfig)
	}
}

// UpdateSiteSettings edits the mail transport overrides. Admin only.
func UpdateSiteSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		siteConfig, err := loadSiteConfiguration(db)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to load site settings"})
			return
		}

		var input struct {
			EmailHost         string `json:"emailHost"`
			EmailPort         int    `json:"emailPort" binding:"omitempty,min=1,max=65535"`
			EmailHostUser     string `json:"emailHostUser" binding:"omitempty,email"`
			EmailHostPassword string `json:"emailHostPassword"`
			EmailUseTLS       *bool  `json:"emailUseTLS"`
			DefaultFromEmail  string `json:"defaultFromEmail" binding:"omitempty,email"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		siteConfig.EmailHost = input.EmailHost
		if input.EmailPort != 0 {
			siteConfig.EmailPort = input.EmailPort
		}
		siteConfig.EmailHostUser = input.EmailHostUser
		if input.EmailHostPassword != "" {
			siteConfig.EmailHostPassword = input.EmailHostPassword
		}
		if input.EmailUseTLS != nil {
			siteConfig.EmailUseTLS = *input.EmailUseTLS
		}
		siteConfig.DefaultFromEmail = input.DefaultFromEmail

		if err := db.Save(siteConfig).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update site settings"})
			return
		}

		c.JSON(200, gin.H{"message": "Site settings have been updated successfully", "settings": siteConfig})
	}
}
