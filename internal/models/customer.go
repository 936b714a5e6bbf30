package models

import "gorm.io/gorm"

type Customer struct {
	gorm.Model
	Name    string `json:"name" gorm:"column:name;not null"`
	Phone   string `json:"phone" gorm:"column:phone;unique;not null"`
	Email   string `json:"email,omitempty" gorm:"column:email"`
	Address string `json:"address,omitempty" gorm:"column:address"`

	// Trip-specific preferences captured at enquiry time
	ComingFrom          string `json:"comingFrom,omitempty" gorm:"column:coming_from"`
	FromLocation        string `json:"fromLocation,omitempty" gorm:"column:from_location"`
	ToLocation          string `json:"toLocation,omitempty" gorm:"column:to_location"`
	VehicleTypeSelected string `json:"vehicleTypeSelected,omitempty" gorm:"column:vehicle_type_selected"`
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}
