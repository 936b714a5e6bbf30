package handlers

import (
	"fmt"
	"strings"

	"github.com/TharunSree/taxi-fleet-backend/internal/audit"
	"github.com/TharunSree/taxi-fleet-backend/internal/middleware"
	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CustomerInput struct {
	Name                string `json:"name" binding:"required"`
	Phone               string `json:"phone" binding:"required"`
	Email               string `json:"email" binding:"omitempty,email"`
	Address             string `json:"address"`
	ComingFrom          string `json:"comingFrom"`
	FromLocation        string `json:"fromLocation"`
	ToLocation          string `json:"toLocation"`
	VehicleTypeSelected string `json:"vehicleTypeSelected"`
}

func (in *CustomerInput) apply(customer *models.Customer) error {
	if in.VehicleTypeSelected != "" && !models.IsValidVehicleType(in.VehicleTypeSelected) {
		return fmt.Errorf("invalid vehicle type: %s", in.VehicleTypeSelected)
	}
	customer.Name = in.Name
	customer.Phone = in.Phone
	customer.Email = in.Email
	customer.Address = in.Address
	customer.ComingFrom = in.ComingFrom
	customer.FromLocation = in.FromLocation
	customer.ToLocation = in.ToLocation
	customer.VehicleTypeSelected = in.VehicleTypeSelected
	return nil
}

// GetCustomers lists customers with an optional name/phone search.
func GetCustomers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")

		var customers []models.Customer
		query := db.Order("name ASC")
		if search != "" {
			like := "%" + strings.ToLower(search) + "%"
			query = query.Where("LOWER(name) LIKE ? OR phone LIKE ?", like, "%"+search+"%")
		}

		if err := query.Find(&customers).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch customers"})
			return
		}

		c.JSON(200, customers)
	}
}

func CreateCustomer(db *gorm.DB, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CustomerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var customer models.Customer
		if err := input.apply(&customer); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := db.Create(&customer).Error; err != nil {
			c.JSON(400, gin.H{"error": "Failed to create customer: phone number may already exist"})
			return
		}

		rec.Saved(middleware.CurrentUser(c), "customer", customer.ID, customer.Name, true,
			fmt.Sprintf("Customer '%s' was created", customer.Name))

		c.JSON(201, customer)
	}
}

func UpdateCustomer(db *gorm.DB, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var customer models.Customer
		if err := db.First(&customer, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Customer not found"})
			return
		}

		var input CustomerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := input.apply(&customer); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := db.Save(&customer).Error; err != nil {
			c.JSON(400, gin.H{"error": "Failed to update customer: phone number may already exist"})
			return
		}

		rec.Saved(middleware.CurrentUser(c), "customer", customer.ID, customer.Name, false,
			fmt.Sprintf("Customer '%s' was updated", customer.Name))

		c.JSON(200, customer)
	}
}

// DeleteCustomer removes a customer unless any trip still references
// them.
func DeleteCustomer(db *gorm.DB, rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var customer models.Customer
		if err := db.First(&customer, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Customer not found"})
			return
		}

		var tripCount int64
		db.Model(&models.Trip{}).Where("customer_id = ?", customer.ID).Count(&tripCount)
		if tripCount > 0 {
			c.JSON(409, gin.H{"error": "Cannot delete customer: trips reference this customer"})
			return
		}

		if err := db.Delete(&customer).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete customer"})
			return
		}

		rec.Deleted(middleware.CurrentUser(c), "customer", customer.ID, customer.Name,
			fmt.Sprintf("Customer '%s' was deleted", customer.Name))

		c.JSON(200, gin.H{"message": "Customer deleted successfully"})
	}
}
