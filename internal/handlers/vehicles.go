package handlers

import (
	"fmt"

	"github.com/TharunSree/taxi-fleet-backend/internal/audit"
	"github.com/TharunSree/taxi-fleet-backend/internal/middleware"
	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VehicleInput struct {
	Number     string   `json:"number" binding:"required"`
	Type       string   `json:"type" binding:"required"`
	Make       string   `json:"make" binding:"required"`
	Model      string   `json:"model" binding:"required"`
	VendorID   uint     `json:"vendorId" binding:"required"`
	PricePerKm *float64 `json:"pricePerKm"`
}

// GetVehicles lists vehicles with optional district and type filters.
func GetVehicles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		district := c.Query("district")
		vehicleType := c.Query("type")

		var vehicles []models.Vehicle
		query := db.Preload("Vendor").Order("vehicles.created_at DESC")
		if district != "" {
			query = query.Joins("JOIN vendors ON vendors.id = vehicles.vendor_id").
				Where("LOWER(vendors.district) = LOWER(?)", district)
		}
		if vehicleType != "" {
			query = query.Where("vehicles.type = ?", vehicleType)
		}

		if err := query.Find(&vehicles).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch vehicles"})
			return
		}

		c.JSON(200, vehicles)
	}
}

// GetVehiclesByVendor is the dropdown feed for the trip form: vehicles
// filtered by vendor, district and/or type, flattened to id + label.
func GetVehiclesByVendor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorID := c.Query("vendor_id")
		district := c.Query("district")
		vehicleType := c.Query("type")

		var vehicles []models.Vehicle
		query := db.Preload("Vendor")
		if vendorID != "" {
			query = query.Where("vendor_id = ?", vendorID)
		} else if district != "" {
			query = query.Joins("JOIN vendors ON vendors.id = vehicles.vendor_id").
				Where("LOWER(vendors.district) = LOWER(?)", district)
		}
		if vehicleType != "" {
			query = query.Where("vehicles.type = ?", vehicleType)
		}

		if err := query.Find(&vehicles).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch vehicles"})
			return
		}

		results := make([]gin.H, 0, len(vehicles))
		for _, v := range vehicles {
			vendorName := ""
			if v.Vendor != nil {
				vendorName = v.Vendor.Name
			}
			results = append(results, gin.H{
				"id":   v.ID,
				"name": fmt.Sprintf("%s - %s %s (%s)", v.Number, v.Make, v.ModelName, vendorName),
			})
		}

		c.JSON(200, results)
	}
}

func CreateVehicle(db *gorm.DB, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VehicleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if !models.IsValidVehicleType(input.Type) {
			c.JSON(400, gin.H{"error": fmt.Sprintf("invalid vehicle type: %s", input.Type)})
			return
		}

		var vendor models.Vendor
		if err := db.First(&vendor, input.VendorID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Vendor not found"})
			return
		}

		vehicle := models.Vehicle{
			Number:    input.Number,
			Type:      input.Type,
			Make:      input.Make,
			ModelName: input.Model,
			VendorID:  input.VendorID,
		}
		if input.PricePerKm != nil {
			vehicle.PricePerKm = *input.PricePerKm
		} else {
			vehicle.PricePerKm = 20.00
		}

		if err := db.Create(&vehicle).Error; err != nil {
			c.JSON(400, gin.H{"error": "Failed to create vehicle: plate number may already exist"})
			return
		}

		rec.Saved(middleware.CurrentUser(c), "vehicle", vehicle.ID, vehicle.Number, true,
			fmt.Sprintf("Vehicle '%s' was created", vehicle.Number))

		c.JSON(201, vehicle)
	}
}

func UpdateVehicle(db *gorm.DB, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var vehicle models.Vehicle
		if err := db.First(&vehicle, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Vehicle not found"})
			return
		}

		var input VehicleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if !models.IsValidVehicleType(input.Type) {
			c.JSON(400, gin.H{"error": fmt.Sprintf("invalid vehicle type: %s", input.Type)})
			return
		}

		vehicle.Number = input.Number
		vehicle.Type = input.Type
		vehicle.Make = input.Make
		vehicle.ModelName = input.Model
		vehicle.VendorID = input.VendorID
		if input.PricePerKm != nil {
			vehicle.PricePerKm = *input.PricePerKm
		}

		if err := db.Save(&vehicle).Error; err != nil {
			c.JSON(400, gin.H{"error": "Failed to update vehicle: plate number may already exist"})
			return
		}

		rec.Saved(middleware.CurrentUser(c), "vehicle", vehicle.ID, vehicle.Number, false,
			fmt.Sprintf("Vehicle '%s' was updated", vehicle.Number))

		c.JSON(200, vehicle)
	}
}

// DeleteVehicle removes a vehicle unless any trip still references it.
func DeleteVehicle(db *gorm.DB, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var vehicle models.Vehicle
		if err := db.First(&vehicle, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Vehicle not found"})
			return
		}

		var tripCount int64
		db.Model(&models.Trip{}).Where("vehicle_id = ?", vehicle.ID).Count(&tripCount)
		if tripCount > 0 {
			c.JSON(409, gin.H{"error": "Cannot delete vehicle: trips reference this vehicle"})
			return
		}

		if err := db.Delete(&vehicle).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete vehicle"})
			return
		}

		rec.Deleted(middleware.CurrentUser(c), "vehicle", vehicle.ID, vehicle.Number,
			fmt.Sprintf("Vehicle '%s' was deleted", vehicle.Number))

		c.JSON(200, gin.H{"message": "Vehicle deleted successfully"})
	}
}
