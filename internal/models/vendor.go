package models

import "gorm.io/gorm"

type Vendor struct {
	gorm.Model
	Name     string `json:"name" gorm:"column:name;not null"`
	District string `json:"district" gorm:"column:district;not null"`
	Area     string `json:"area" gorm:"column:area"`

	Vehicles []Vehicle `json:"vehicles,omitempty" gorm:"foreignKey:VendorID"`
	Ratings  []Rating  `json:"ratings,omitempty" gorm:"foreignKey:VendorID"`
}

// TableName specifies the table name
func (Vendor) TableName() string {
	return "vendors"
}
