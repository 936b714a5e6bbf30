package models

import "gorm.io/gorm"

type VehicleType string

const (
	VehicleTypeSedan     VehicleType = "Sedan"
	VehicleTypeHatchback VehicleType = "Hatchback"
	VehicleTypeSUV       VehicleType = "SUV"
	VehicleTypeVan       VehicleType = "Van"
	VehicleTypeMinibus   VehicleType = "Minibus"
)

// VehicleTypes lists every valid vehicle type for filter dropdowns.
var VehicleTypes = []VehicleType{
	VehicleTypeSedan,
	VehicleTypeHatchback,
	VehicleTypeSUV,
	VehicleTypeVan,
	VehicleTypeMinibus,
}

func IsValidVehicleType(t string) bool {
	for _, vt := range VehicleTypes {
		if string(vt) == t {
			return true
		}
	}
	return false
}

type Vehicle struct {
	gorm.Model
	Number    string  `json:"number" gorm:"column:number;unique;not null"`
	Type      string  `json:"type" gorm:"column:type;not null"`
	Make      string  `json:"make" gorm:"column:make;not null"` // e.g., Toyota
	ModelName string  `json:"model" gorm:"column:model;not null"`
	VendorID  uint    `json:"vendorId" gorm:"column:vendor_id;not null"`
	Vendor    *Vendor `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	// Default price per extra kilometer for non-package trips.
	PricePerKm float64 `json:"pricePerKm" gorm:"column:price_per_km;not null;default:20.00"`
}

// TableName specifies the table name
func (Vehicle) TableName() string {
	return "vehicles"
}
