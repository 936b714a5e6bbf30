package models

import "gorm.io/gorm"

// Package is a named pricing bundle for a vehicle type/model.
type Package struct {
	gorm.Model
	Name         string  `json:"name" gorm:"column:name;unique;not null"`
	VehicleType  string  `json:"vehicleType" gorm:"column:vehicle_type;not null"`
	VehicleModel string  `json:"vehicleModel" gorm:"column:vehicle_model;not null"` // e.g., Innova, Swift Dzire
	Charges      float64 `json:"charges" gorm:"column:charges;not null"`
	// Cost for each extra kilometer beyond the package allowance.
	ExtraChargePerKm float64 `json:"extraChargePerKm" gorm:"column:extra_charge_per_km;not null"`
}

// TableName specifies the table name
func (Package) TableName() string {
	return "packages"
}
