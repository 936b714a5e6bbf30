package routes

import (
	"github.com/TharunSree/taxi-fleet-backend/internal/audit"
	"github.com/TharunSree/taxi-fleet-backend/internal/config"
	"github.com/TharunSree/taxi-fleet-backend/internal/handlers"
	"github.com/TharunSree/taxi-fleet-backend/internal/middleware"
	"github.com/TharunSree/taxi-fleet-backend/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps holds everything the HTTP surface needs.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Logger   *zap.Logger
	Recorder *audit.Recorder
	Mailer   services.Mailer
	Tokens   *services.TokenStore
}

// Setup wires the full route table.
func Setup(d Deps) *gin.Engine {
	if d.Config.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(d.Logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", handlers.Login(d.DB, d.Recorder))
			auth.POST("/logout",
				middleware.AuthMiddleware(d.DB, d.Tokens),
				handlers.Logout(d.Recorder, d.Tokens))
		}

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(d.DB, d.Tokens))
		{
			customers := protected.Group("/customers")
			{
				customers.GET("", handlers.GetCustomers(d.DB))
				customers.POST("", handlers.CreateCustomer(d.DB, d.Recorder))
				customers.PUT("/:id", handlers.UpdateCustomer(d.DB, d.Recorder))
				customers.DELETE("/:id", handlers.DeleteCustomer(d.DB, d.Recorder))
			}

			vendors := protected.Group("/vendors")
			{
				vendors.GET("", handlers.GetVendors(d.DB))
				vendors.GET("/districts", handlers.GetVendorDistricts(d.DB))
				vendors.GET("/by-district", handlers.GetVendorsByDistrict(d.DB))
				vendors.POST("", handlers.CreateVendor(d.DB, d.Recorder))
				vendors.PUT("/:id", handlers.UpdateVendor(d.DB, d.Recorder))
				vendors.DELETE("/:id", handlers.DeleteVendor(d.DB, d.Recorder))
			}

			vehicles := protected.Group("/vehicles")
			{
				vehicles.GET("", handlers.GetVehicles(d.DB))
				vehicles.GET("/by-vendor", handlers.GetVehiclesByVendor(d.DB))
				vehicles.POST("", handlers.CreateVehicle(d.DB, d.Recorder))
				vehicles.PUT("/:id", handlers.UpdateVehicle(d.DB, d.Recorder))
				vehicles.DELETE("/:id", handlers.DeleteVehicle(d.DB, d.Recorder))
			}

			packages := protected.Group("/packages")
			{
				packages.GET("", handlers.GetPackages(d.DB))
				packages.POST("", handlers.CreatePackage(d.DB, d.Recorder))
				packages.PUT("/:id", handlers.UpdatePackage(d.DB, d.Recorder))
				packages.DELETE("/:id", handlers.DeletePackage(d.DB, d.Recorder))
			}

			trips := protected.Group("/trips")
			{
				trips.GET("", handlers.GetTrips(d.DB))
				trips.GET("/feed", handlers.TripFeed(d.DB))
				trips.GET("/:id", handlers.GetTrip(d.DB))
				trips.POST("", handlers.CreateTrip(d.DB, d.Recorder, d.Mailer, d.Logger))
				trips.PUT("/:id", handlers.UpdateTrip(d.DB, d.Recorder))
				trips.POST("/:id/cancel", handlers.CancelTrip(d.DB, d.Recorder, d.Mailer, d.Logger, d.Config.Mail.CancelFailSilently))
				trips.POST("/:id/finalize", handlers.FinalizeTrip(d.DB, d.Recorder))
				trips.POST("/:id/rating", handlers.RateTrip(d.DB))
			}

			reports := protected.Group("/reports")
			{
				reports.GET("/trips", handlers.TripReport(d.DB))
				reports.GET("/trips/:id/bill", handlers.TripBill(d.DB))
				reports.GET("/trips/:id/customer-pdf", handlers.CustomerConfirmationPDF(d.DB))
				reports.GET("/trips/:id/vendor-pdf", handlers.VendorOrderPDF(d.DB))
			}

			protected.GET("/dashboard", handlers.Dashboard(d.DB))

			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				users := admin.Group("/users")
				{
					users.GET("", handlers.GetUsers(d.DB))
					users.POST("", handlers.CreateUser(d.DB))
					users.PUT("/:id", handlers.UpdateUser(d.DB))
					users.DELETE("/:id", handlers.DeleteUser(d.DB))
				}

				admin.GET("/audit/logs", handlers.ActionLogs(d.DB))
				admin.GET("/config/settings", handlers.GetSiteSettings(d.DB))
				admin.PUT("/config/settings", handlers.UpdateSiteSettings(d.DB))
			}
		}
	}

	return r
}
