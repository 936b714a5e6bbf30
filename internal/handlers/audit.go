package handlers

import (
	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ActionLogs returns the audit trail, split into domain-record actions
// and session (login/logout) events, newest first. Admin only.
func ActionLogs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessionLogs []models.AuditLog
		if err := db.Where("content_type = ?", "user").
			Order("action_time DESC").
			Find(&sessionLogs).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch session logs"})
			return
		}

		var actionLogs []models.AuditLog
		if err := db.Where("content_type <> ?", "user").
			Order("action_time DESC").
			Find(&actionLogs).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch action logs"})
			return
		}

		c.JSON(200, gin.H{
			"actionLogs":  actionLogs,
			"sessionLogs": sessionLogs,
		})
	}
}
