package handlers

import (
	"fmt"
	"time"

	"github.com/TharunSree/taxi-fleet-backend/internal/audit"
	"github.com/TharunSree/taxi-fleet-backend/internal/middleware"
	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"github.com/TharunSree/taxi-fleet-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// tripView augments a trip with its derived financial fields, which
// are computed per response and never stored.
type tripView struct {
	models.Trip
	AgentRevenue    float64 `json:"agentRevenue"`
	RemainingAmount float64 `json:"remainingAmount"`
	FinalBalance    float64 `json:"finalBalance"`
	EffectiveKmRate float64 `json:"effectiveKmRate"`
}

func newTripView(t models.Trip) tripView {
	return tripView{
		Trip:            t,
		AgentRevenue:    t.AgentRevenue(),
		RemainingAmount: t.RemainingAmount(),
		FinalBalance:    t.FinalBalance(),
		EffectiveKmRate: t.EffectiveKmRate(),
	}
}

type TripInput struct {
	CustomerID        uint       `json:"customerId" binding:"required"`
	VehicleID         uint       `json:"vehicleId" binding:"required"`
	PackageID         *uint      `json:"packageId"`
	TripDate          time.Time  `json:"tripDate" binding:"required"`
	Status            string     `json:"status"`
	TotalPrice        float64    `json:"totalPrice"`
	AdvancePaid       float64    `json:"advancePaid"`
	AdvancePaidDate   *time.Time `json:"advancePaidDate"`
	VendorPrice       *float64   `json:"vendorPrice"`
	VendorAdvance     *float64   `json:"vendorAdvance"`
	VendorAdvanceDate *time.Time `json:"vendorAdvanceDate"`
	Remarks           string     `json:"remarks"`
}

// GetTrips lists trips, optionally filtered by status, newest trip
// date first.
func GetTrips(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query("status")
		if status != "" && !models.IsValidTripStatus(status) {
			c.JSON(400, gin.H{"error": fmt.Sprintf("invalid trip status: %s", status)})
			return
		}

		var trips []models.Trip
		query := db.Preload("Customer").
			Preload("Vehicle").
			Preload("Vehicle.Vendor").
			Preload("Package").
			Preload("Rating").
			Order("trip_date DESC")
		if status != "" {
			query = query.Where("status = ?", status)
		}

		if err := query.Find(&trips).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch trips"})
			return
		}

		views := make([]tripView, 0, len(trips))
		for _, t := range trips {
			views = append(views, newTripView(t))
		}

		c.JSON(200, views)
	}
}

func GetTrip(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var trip models.Trip
		if err := db.Preload("Customer").
			Preload("Vehicle").
			Preload("Vehicle.Vendor").
			Preload("Package").
			Preload("Rating").
			First(&trip, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Trip not found"})
			return
		}

		c.JSON(200, newTripView(trip))
	}
}

// CreateTrip books a trip and sends the customer a confirmation email
// when they have an address on file. The email is best-effort: a send
// failure is logged but the booking stands.
func CreateTrip(db *gorm.DB, rec *audit.Recorder, mailer services.Mailer, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TripInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if input.Status == "" {
			input.Status = string(models.TripStatusUpcoming)
		}
		if !models.IsValidTripStatus(input.Status) {
			c.JSON(400, gin.H{"error": fmt.Sprintf("invalid trip status: %s", input.Status)})
			return
		}

		var customer models.Customer
		if err := db.First(&customer, input.CustomerID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Customer not found"})
			return
		}

		var vehicle models.Vehicle
		if err := db.First(&vehicle, input.VehicleID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Vehicle not found"})
			return
		}

		var pkg *models.Package
		if input.PackageID != nil {
			pkg = &models.Package{}
			if err := db.First(pkg, *input.PackageID).Error; err != nil {
				c.JSON(404, gin.H{"error": "Package not found"})
				return
			}
		}

		trip := models.Trip{
			CustomerID:        input.CustomerID,
			VehicleID:         input.VehicleID,
			PackageID:         input.PackageID,
			TripDate:          input.TripDate,
			Status:            input.Status,
			TotalPrice:        input.TotalPrice,
			AdvancePaid:       input.AdvancePaid,
			AdvancePaidDate:   input.AdvancePaidDate,
			VendorPrice:       input.VendorPrice,
			VendorAdvance:     input.VendorAdvance,
			VendorAdvanceDate: input.VendorAdvanceDate,
			Remarks:           input.Remarks,
		}

		// Auto-fill the price from the package's base charge when the
		// form left it blank.
		if trip.TotalPrice == 0 && pkg != nil {
			trip.TotalPrice = pkg.Charges
		}

		if err := db.Create(&trip).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create trip"})
			return
		}

		trip.Customer = &customer
		trip.Vehicle = &vehicle
		trip.Package = pkg

		rec.Saved(middleware.CurrentUser(c), "trip", trip.ID, audit.TripRepr(trip.ID), true,
			fmt.Sprintf("Trip #%d was created", trip.ID))

		if err := mailer.SendTripConfirmation(&trip); err != nil {
			log.Warn("trip confirmation email failed",
				zap.Uint("tripId", trip.ID), zap.Error(err))
		}

		c.JSON(201, newTripView(trip))
	}
}

func UpdateTrip(db *gorm.DB, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var trip models.Trip
		if err := db.First(&trip, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Trip not found"})
			return
		}

		var input TripInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if input.Status == "" {
			input.Status = trip.Status
		}
		if !models.IsValidTripStatus(input.Status) {
			c.JSON(400, gin.H{"error": fmt.Sprintf("invalid trip status: %s", input.Status)})
			return
		}

		if input.PackageID != nil {
			var pkg models.Package
			if err := db.First(&pkg, *input.PackageID).Error; err != nil {
				c.JSON(404, gin.H{"error": "Package not found"})
				return
			}
		}

		trip.CustomerID = input.CustomerID
		trip.VehicleID = input.VehicleID
		trip.PackageID = input.PackageID
		trip.TripDate = input.TripDate
		trip.Status = input.Status
		trip.TotalPrice = input.TotalPrice
		trip.AdvancePaid = input.AdvancePaid
		trip.AdvancePaidDate = input.AdvancePaidDate
		trip.VendorPrice = input.VendorPrice
		trip.VendorAdvance = input.VendorAdvance
		trip.VendorAdvanceDate = input.VendorAdvanceDate
		trip.Remarks = input.Remarks

		if err := db.Save(&trip).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update trip"})
			return
		}

		message := fmt.Sprintf("Trip #%d was updated", trip.ID)
		if trip.Status == string(models.TripStatusCancelled) {
			message = fmt.Sprintf("Trip #%d was cancelled", trip.ID)
		}
		rec.Saved(middleware.CurrentUser(c), "trip", trip.ID, audit.TripRepr(trip.ID), false, message)

		c.JSON(200, newTripView(trip))
	}
}

// CancelTrip marks the trip cancelled and then notifies the customer.
// The cancellation always sticks; whether a failed email is reported
// back is a deployment choice (failSilently).
func CancelTrip(db *gorm.DB, rec *audit.Recorder, mailer services.Mailer, log *zap.Logger, failSilently bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var trip models.Trip
		if err := db.Preload("Customer").First(&trip, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Trip not found"})
			return
		}

		trip.Status = string(models.TripStatusCancelled)
		if err := db.Save(&trip).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to cancel trip"})
			return
		}

		rec.Saved(middleware.CurrentUser(c), "trip", trip.ID, audit.TripRepr(trip.ID), false,
			fmt.Sprintf("Trip #%d was cancelled", trip.ID))

		if err := mailer.SendTripCancellation(&trip); err != nil {
			log.Warn("trip cancellation email failed",
				zap.Uint("tripId", trip.ID), zap.Error(err))
			if !failSilently {
				c.JSON(502, gin.H{
					"error":  "Trip was cancelled but the cancellation email could not be sent",
					"tripId": trip.ID,
				})
				return
			}
		}

		c.JSON(200, gin.H{"message": "Trip has been successfully cancelled", "trip": newTripView(trip)})
	}
}

type TripFinalizeInput struct {
	AdditionalDistance *float64   `json:"additionalDistance" binding:"required,gte=0"`
	FinalPaymentAmount *float64   `json:"finalPaymentAmount" binding:"required"`
	FinalPaymentDate   *time.Time `json:"finalPaymentDate"`
	Remarks            string     `json:"remarks"`
}

// FinalizeTrip closes out a trip: extra distance is billed at the
// effective per-km rate, the total is bumped and the trip completes.
func FinalizeTrip(db *gorm.DB, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var trip models.Trip
		if err := db.Preload("Package").Preload("Vehicle").First(&trip, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Trip not found"})
			return
		}

		if trip.Status == string(models.TripStatusCompleted) {
			c.JSON(400, gin.H{"error": "Trip is already completed"})
			return
		}

		var input TripFinalizeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		extraKmRate := trip.EffectiveKmRate()
		additionalCost := *input.AdditionalDistance * extraKmRate

		trip.AdditionalDistance = input.AdditionalDistance
		trip.FinalPaymentAmount = input.FinalPaymentAmount
		trip.FinalPaymentDate = input.FinalPaymentDate
		if input.Remarks != "" {
			trip.Remarks = input.Remarks
		}
		trip.TotalPrice += additionalCost
		trip.Status = string(models.TripStatusCompleted)

		if err := db.Save(&trip).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to finalize trip"})
			return
		}

		rec.Saved(middleware.CurrentUser(c), "trip", trip.ID, audit.TripRepr(trip.ID), false,
			fmt.Sprintf("Trip #%d was finalized", trip.ID))

		c.JSON(200, gin.H{
			"message":        "Trip has been completed and finalized",
			"extraKmRate":    extraKmRate,
			"additionalCost": additionalCost,
			"trip":           newTripView(trip),
		})
	}
}

type RatingInput struct {
	Stars   int    `json:"stars" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// RateTrip records the one-off vendor rating for a completed trip.
func RateTrip(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var trip models.Trip
		if err := db.Preload("Vehicle").First(&trip, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Trip not found"})
			return
		}

		if trip.Status != string(models.TripStatusCompleted) {
			c.JSON(400, gin.H{"error": "Only completed trips can be rated"})
			return
		}

		var existing models.Rating
		if err := db.Where("trip_id = ?", trip.ID).First(&existing).Error; err == nil {
			c.JSON(400, gin.H{"error": "This trip has already been rated"})
			return
		}

		var input RatingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		rating := models.Rating{
			TripID:   trip.ID,
			VendorID: trip.Vehicle.VendorID,
			Stars:    input.Stars,
			Comment:  input.Comment,
		}

		if err := db.Create(&rating).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to submit rating"})
			return
		}

		c.JSON(201, rating)
	}
}

// TripFeed provides a daily summary of trips as a JSON feed for the
// calendar view.
func TripFeed(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var dailyCounts []struct {
			Date  string
			Count int
		}
		if err := db.Model(&models.Trip{}).
			Select("CAST(DATE(trip_date) AS TEXT) as date, COUNT(id) as count").
			Group("DATE(trip_date)").
			Order("date ASC").
			Scan(&dailyCounts).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to build trip feed"})
			return
		}

		events := make([]gin.H, 0, len(dailyCounts))
		for _, daily := range dailyCounts {
			events = append(events, gin.H{
				"title":  fmt.Sprintf("Total Trips: %d", daily.Count),
				"start":  daily.Date,
				"allDay": true,
			})
		}

		c.JSON(200, events)
	}
}
