package handlers

import (
	"fmt"
	"time"

	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"github.com/TharunSree/taxi-fleet-backend/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReportSummary is the date-range rollup shown above the report table.
// All totals are zero-valued when no trips match.
type ReportSummary struct {
	TotalTrips        int64   `json:"totalTrips"`
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalAgentRevenue float64 `json:"totalAgentRevenue"`
	TotalAdvance      float64 `json:"totalAdvance"`
}

// TripReport returns trips in a date range plus summary totals.
func TripReport(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Trip{})

		if startStr := c.Query("start_date"); startStr != "" {
			if _, err := time.Parse("2006-01-02", startStr); err != nil {
				c.JSON(400, gin.H{"error": "start_date must be YYYY-MM-DD"})
				return
			}
			query = query.Where("DATE(trip_date) >= ?", startStr)
		}
		if endStr := c.Query("end_date"); endStr != "" {
			if _, err := time.Parse("2006-01-02", endStr); err != nil {
				c.JSON(400, gin.H{"error": "end_date must be YYYY-MM-DD"})
				return
			}
			query = query.Where("DATE(trip_date) <= ?", endStr)
		}

		var summary ReportSummary
		if err := query.Session(&gorm.Session{}).
			Select(
				"COUNT(id) as total_trips, " +
					"COALESCE(SUM(total_price), 0) as total_revenue, " +
					"COALESCE(SUM(total_price - vendor_price), 0) as total_agent_revenue, " +
					"COALESCE(SUM(advance_paid), 0) as total_advance",
			).
			Scan(&summary).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to build report summary"})
			return
		}

		var trips []models.Trip
		if err := query.Session(&gorm.Session{}).
			Preload("Customer").
			Preload("Vehicle").
			Preload("Package").
			Order("trip_date DESC").
			Find(&trips).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch trips"})
			return
		}

		views := make([]tripView, 0, len(trips))
		for _, t := range trips {
			views = append(views, newTripView(t))
		}

		c.JSON(200, gin.H{
			"summary": summary,
			"trips":   views,
		})
	}
}

func loadTripForBilling(db *gorm.DB, id string) (*models.Trip, error) {
	var trip models.Trip
	err := db.Preload("Customer").
		Preload("Vehicle").
		Preload("Vehicle.Vendor").
		Preload("Package").
		First(&trip, id).Error
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// TripBill returns the invoice breakdown for a trip.
func TripBill(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		trip, err := loadTripForBilling(db, c.Param("id"))
		if err != nil {
			c.JSON(404, gin.H{"error": "Trip not found"})
			return
		}

		c.JSON(200, gin.H{
			"trip": newTripView(*trip),
			"bill": services.BuildBill(trip),
		})
	}
}

// CustomerConfirmationPDF streams the customer confirmation document.
func CustomerConfirmationPDF(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		trip, err := loadTripForBilling(db, c.Param("id"))
		if err != nil {
			c.JSON(404, gin.H{"error": "Trip not found"})
			return
		}

		data, err := services.CustomerConfirmationPDF(trip)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate PDF"})
			return
		}

		filename := fmt.Sprintf("customer_confirmation_%d.pdf", trip.ID)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(200, "application/pdf", data)
	}
}

// VendorOrderPDF streams the vendor order document.
func VendorOrderPDF(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		trip, err := loadTripForBilling(db, c.Param("id"))
		if err != nil {
			c.JSON(404, gin.H{"error": "Trip not found"})
			return
		}

		data, err := services.VendorOrderPDF(trip)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate PDF"})
			return
		}

		filename := fmt.Sprintf("vendor_order_%d.pdf", trip.ID)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(200, "application/pdf", data)
	}
}
