package handlers

import (
	"fmt"

	"github.com/TharunSree/taxi-fleet-backend/internal/audit"
	"github.com/TharunSree/taxi-fleet-backend/internal/middleware"
	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VendorInput struct {
	Name     string `json:"name" binding:"required"`
	District string `json:"district" binding:"required"`
	Area     string `json:"area"`
}

// GetVendors lists vendors, optionally filtered by district.
func GetVendors(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		district := c.Query("district")

		var vendors []models.Vendor
		query := db.Order("name ASC")
		if district != "" {
			query = query.Where("LOWER(district) = LOWER(?)", district)
		}

		if err := query.Find(&vendors).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch vendors"})
			return
		}

		c.JSON(200, vendors)
	}
}

// GetVendorDistricts returns the distinct district list for filter
// dropdowns.
func GetVendorDistricts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var districts []string
		if err := db.Model(&models.Vendor{}).
			Distinct("district").
			Order("district ASC").
			Pluck("district", &districts).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch districts"})
			return
		}

		c.JSON(200, districts)
	}
}

// GetVendorsByDistrict is the id/name feed behind the vendor dropdown
// on the trip form.
func GetVendorsByDistrict(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		district := c.Query("district")

		query := db.Model(&models.Vendor{}).Order("name ASC")
		if district != "" {
			query = query.Where("LOWER(district) = LOWER(?)", district)
		}

		var vendors []struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		}
		if err := query.Select("id", "name").Find(&vendors).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch vendors"})
			return
		}

		c.JSON(200, vendors)
	}
}

func CreateVendor(db *gorm.DB, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VendorInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		vendor := models.Vendor{
			Name:     input.Name,
			District: input.District,
			Area:     input.Area,
		}

		if err := db.Create(&vendor).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create vendor"})
			return
		}

		rec.Saved(middleware.CurrentUser(c), "vendor", vendor.ID, vendor.Name, true,
			fmt.Sprintf("Vendor '%s' was created", vendor.Name))

		c.JSON(201, vendor)
	}
}

func UpdateVendor(db *gorm.DB, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var vendor models.Vendor
		if err := db.First(&vendor, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Vendor not found"})
			return
		}

		var input VendorInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		vendor.Name = input.Name
		vendor.District = input.District
		vendor.Area = input.Area

		if err := db.Save(&vendor).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update vendor"})
			return
		}

		rec.Saved(middleware.CurrentUser(c), "vendor", vendor.ID, vendor.Name, false,
			fmt.Sprintf("Vendor '%s' was updated", vendor.Name))

		c.JSON(200, vendor)
	}
}

// DeleteVendor removes a vendor together with its vehicles and
// ratings, unless one of those vehicles is still referenced by a trip.
func DeleteVendor(db *gorm.DB, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var vendor models.Vendor
		if err := db.First(&vendor, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Vendor not found"})
			return
		}

		var trippedVehicles int64
		db.Model(&models.Trip{}).
			Joins("JOIN vehicles ON vehicles.id = trips.vehicle_id").
			Where("vehicles.vendor_id = ?", vendor.ID).
			Count(&trippedVehicles)
		if trippedVehicles > 0 {
			c.JSON(409, gin.H{"error": "Cannot delete vendor: trips reference this vendor's vehicles"})
			return
		}

		tx := db.Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
			}
		}()

		if err := tx.Where("vendor_id = ?", vendor.ID).Delete(&models.Vehicle{}).Error; err != nil {
			tx.Rollback()
			c.JSON(500, gin.H{"error": "Failed to delete vendor's vehicles"})
			return
		}
		if err := tx.Where("vendor_id = ?", vendor.ID).Delete(&models.Rating{}).Error; err != nil {
			tx.Rollback()
			c.JSON(500, gin.H{"error": "Failed to delete vendor's ratings"})
			return
		}
		if err := tx.Delete(&vendor).Error; err != nil {
			tx.Rollback()
			c.JSON(500, gin.H{"error": "Failed to delete vendor"})
			return
		}
		if err := tx.Commit().Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete vendor"})
			return
		}

		rec.Deleted(middleware.CurrentUser(c), "vendor", vendor.ID, vendor.Name,
			fmt.Sprintf("Vendor '%s' was deleted", vendor.Name))

		c.JSON(200, gin.H{"message": "Vendor deleted successfully"})
	}
}
