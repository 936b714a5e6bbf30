package handlers

import (
	"fmt"

	"github.com/TharunSree/taxi-fleet-backend/internal/audit"
	"github.com/TharunSree/taxi-fleet-backend/internal/middleware"
	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PackageInput struct {
	Name             string  `json:"name" binding:"required"`
	VehicleType      string  `json:"vehicleType" binding:"required"`
	VehicleModel     string  `json:"vehicleModel" binding:"required"`
	Charges          float64 `json:"charges" binding:"required"`
	ExtraChargePerKm float64 `json:"extraChargePerKm"`
}

func GetPackages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var packages []models.Package
		if err := db.Order("name ASC").Find(&packages).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch packages"})
			return
		}

		c.JSON(200, packages)
	}
}

func CreatePackage(db *gorm.DB, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PackageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if !models.IsValidVehicleType(input.VehicleType) {
			c.JSON(400, gin.H{"error": fmt.Sprintf("invalid vehicle type: %s", input.VehicleType)})
			return
		}

		pkg := models.Package{
			Name:             input.Name,
			VehicleType:      input.VehicleType,
			VehicleModel:     input.VehicleModel,
			Charges:          input.Charges,
			ExtraChargePerKm: input.ExtraChargePerKm,
		}

		if err := db.Create(&pkg).Error; err != nil {
			c.JSON(400, gin.H{"error": "Failed to create package: name may already exist"})
			return
		}

		rec.Saved(middleware.CurrentUser(c), "package", pkg.ID, pkg.Name, true,
			fmt.Sprintf("Package '%s' was created", pkg.Name))

		c.JSON(201, pkg)
	}
}

func UpdatePackage(db *gorm.DB, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pkg models.Package
		if err := db.First(&pkg, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Package not found"})
			return
		}

		var input PackageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if !models.IsValidVehicleType(input.VehicleType) {
			c.JSON(400, gin.H{"error": fmt.Sprintf("invalid vehicle type: %s", input.VehicleType)})
			return
		}

		pkg.Name = input.Name
		pkg.VehicleType = input.VehicleType
		pkg.VehicleModel = input.VehicleModel
		pkg.Charges = input.Charges
		pkg.ExtraChargePerKm = input.ExtraChargePerKm

		if err := db.Save(&pkg).Error; err != nil {
			c.JSON(400, gin.H{"error": "Failed to update package: name may already exist"})
			return
		}

		rec.Saved(middleware.CurrentUser(c), "package", pkg.ID, pkg.Name, false,
			fmt.Sprintf("Package '%s' was updated", pkg.Name))

		c.JSON(200, pkg)
	}
}

// DeletePackage removes a package. Trips that referenced it keep their
// agreed price but lose the package link.
func DeletePackage(db *gorm.DB, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pkg models.Package
		if err := db.First(&pkg, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Package not found"})
			return
		}

		tx := db.Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
			}
		}()

		if err := tx.Model(&models.Trip{}).
			Where("package_id = ?", pkg.ID).
			Update("package_id", nil).Error; err != nil {
			tx.Rollback()
			c.JSON(500, gin.H{"error": "Failed to detach package from trips"})
			return
		}
		if err := tx.Delete(&pkg).Error; err != nil {
			tx.Rollback()
			c.JSON(500, gin.H{"error": "Failed to delete package"})
			return
		}
		if err := tx.Commit().Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete package"})
			return
		}

		rec.Deleted(middleware.CurrentUser(c), "package", pkg.ID, pkg.Name,
			fmt.Sprintf("Package '%s' was deleted", pkg.Name))

		c.JSON(200, gin.H{"message": "Package deleted successfully"})
	}
}
