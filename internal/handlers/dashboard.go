package handlers

import (
	"time"

	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type vendorRanking struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	District      string  `json:"district"`
	AverageRating float64 `json:"averageRating"`
	NumRatings    int64   `json:"numRatings"`
}

// Dashboard assembles the analytics widgets: entity counts, agent
// revenue, the latest bookings, a trips-created chart for the chosen
// period and the top-rated vendors.
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()

		var totalVendors, totalCustomers, totalTrips int64
		var upcomingTrips, completedTrips int64
		db.Model(&models.Vendor{}).Count(&totalVendors)
		db.Model(&models.Customer{}).Count(&totalCustomers)
		db.Model(&models.Trip{}).Count(&totalTrips)
		db.Model(&models.Trip{}).
			Where("trip_date >= ? AND status = ?", now, string(models.TripStatusUpcoming)).
			Count(&upcomingTrips)
		db.Model(&models.Trip{}).
			Where("status = ?", string(models.TripStatusCompleted)).
			Count(&completedTrips)

		var totalAgentRevenue float64
		db.Model(&models.Trip{}).
			Where("status = ?", string(models.TripStatusCompleted)).
			Select("COALESCE(SUM(total_price - vendor_price), 0)").
			Scan(&totalAgentRevenue)

		var latestTrips []models.Trip
		db.Preload("Customer").Preload("Vehicle").
			Order("created_at DESC").
			Limit(5).
			Find(&latestTrips)

		period := c.DefaultQuery("period", "week")
		labels, series, start, periodDisplay := tripChart(db, now, period)

		var periodAgentRevenue float64
		db.Model(&models.Trip{}).
			Where("created_at >= ? AND status = ?", start, string(models.TripStatusCompleted)).
			Select("COALESCE(SUM(total_price - vendor_price), 0)").
			Scan(&periodAgentRevenue)

		var topVendors []vendorRanking
		db.Model(&models.Vendor{}).
			Select("vendors.id, vendors.name, vendors.district, AVG(ratings.stars) as average_rating, COUNT(ratings.id) as num_ratings").
			Joins("JOIN ratings ON ratings.vendor_id = vendors.id").
			Group("vendors.id, vendors.name, vendors.district").
			Order("average_rating DESC, num_ratings DESC").
			Limit(5).
			Scan(&topVendors)

		c.JSON(200, gin.H{
			"totalVendors":       totalVendors,
			"totalCustomers":     totalCustomers,
			"totalTrips":         totalTrips,
			"upcomingTrips":      upcomingTrips,
			"completedTrips":     completedTrips,
			"totalAgentRevenue":  totalAgentRevenue,
			"latestTrips":        latestTrips,
			"chart":              gin.H{"labels": labels, "series": series},
			"period":             period,
			"periodDisplay":      periodDisplay,
			"periodAgentRevenue": periodAgentRevenue,
			"topVendors":         topVendors,
		})
	}
}

// tripChart buckets trips created in the period into a zero-filled
// per-day (or per-month) series. Bucketing happens in Go so the query
// stays portable across database engines.
func tripChart(db *gorm.DB, now time.Time, period string) (labels []string, series []int, start time.Time, display string) {
	var days int
	switch period {
	case "month":
		days = 30
		display = "Last 30 Days"
	case "year":
		display = "Last 12 Months"
	default:
		days = 7
		display = "Last 7 Days"
	}

	if period == "year" {
		start = now.AddDate(-1, 0, 0)
	} else {
		start = now.AddDate(0, 0, -days)
	}

	var createdAts []time.Time
	db.Model(&models.Trip{}).
		Where("created_at >= ?", start).
		Order("created_at ASC").
		Pluck("created_at", &createdAts)

	if period == "year" {
		counts := make(map[string]int)
		for _, t := range createdAts {
			counts[t.Format("2006-01")]++
		}
		for i := 11; i >= 0; i-- {
			month := now.AddDate(0, -i, 0)
			labels = append(labels, month.Format("Jan 2006"))
			series = append(series, counts[month.Format("2006-01")])
		}
		return labels, series, start, display
	}

	counts := make(map[string]int)
	for _, t := range createdAts {
		counts[t.Format("2006-01-02")]++
	}
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		labels = append(labels, day.Format("Jan 02"))
		series = append(series, counts[day.Format("2006-01-02")])
	}
	return labels, series, start, display
}
