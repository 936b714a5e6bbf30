package models

import "gorm.io/gorm"

// Rating is a one-to-one review of a completed trip, credited to the
// vendor that supplied the vehicle.
type Rating struct {
	gorm.Model
	TripID   uint    `json:"tripId" gorm:"column:trip_id;not null;unique"`
	VendorID uint    `json:"vendorId" gorm:"column:vendor_id;not null"`
	Vendor   *Vendor `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	Stars    int     `json:"stars" gorm:"column:stars;not null"`
	Comment  string  `json:"comment,omitempty" gorm:"column:comment"`
}

// TableName specifies the table name
func (Rating) TableName() string {
	return "ratings"
}
