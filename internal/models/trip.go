package models

import (
	"time"

	"gorm.io/gorm"
)

type TripStatus string

const (
	TripStatusUpcoming  TripStatus = "Upcoming"
	TripStatusOnGoing   TripStatus = "On-going"
	TripStatusCompleted TripStatus = "Completed"
	TripStatusCancelled TripStatus = "Cancelled"
)

func IsValidTripStatus(s string) bool {
	switch TripStatus(s) {
	case TripStatusUpcoming, TripStatusOnGoing, TripStatusCompleted, TripStatusCancelled:
		return true
	}
	return false
}

// Trip is the central booking record. Customer and Vehicle rows are
// protected from deletion while a trip references them; the package
// reference is cleared when its package is deleted.
type Trip struct {
	gorm.Model
	CustomerID uint      `json:"customerId" gorm:"column:customer_id;not null"`
	Customer   *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	VehicleID  uint      `json:"vehicleId" gorm:"column:vehicle_id;not null"`
	Vehicle    *Vehicle  `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	PackageID  *uint     `json:"packageId,omitempty" gorm:"column:package_id"`
	Package    *Package  `json:"package,omitempty" gorm:"foreignKey:PackageID;constraint:OnDelete:SET NULL"`

	TripDate time.Time `json:"tripDate" gorm:"column:trip_date;not null"`
	Status   string    `json:"status" gorm:"column:status;not null;default:Upcoming"`

	TotalPrice      float64    `json:"totalPrice" gorm:"column:total_price;not null;default:0"`
	AdvancePaid     float64    `json:"advancePaid" gorm:"column:advance_paid;not null;default:0"`
	AdvancePaidDate *time.Time `json:"advancePaidDate,omitempty" gorm:"column:advance_paid_date"`

	// Amount owed to the vendor and any advance already handed over.
	VendorPrice       *float64   `json:"vendorPrice,omitempty" gorm:"column:vendor_price"`
	VendorAdvance     *float64   `json:"vendorAdvance,omitempty" gorm:"column:vendor_advance"`
	VendorAdvanceDate *time.Time `json:"vendorAdvanceDate,omitempty" gorm:"column:vendor_advance_date"`

	// Set at finalization time.
	AdditionalDistance *float64   `json:"additionalDistance,omitempty" gorm:"column:additional_distance"`
	FinalPaymentAmount *float64   `json:"finalPaymentAmount,omitempty" gorm:"column:final_payment_amount"`
	FinalPaymentDate   *time.Time `json:"finalPaymentDate,omitempty" gorm:"column:final_payment_date"`

	Remarks string `json:"remarks,omitempty" gorm:"column:remarks"`

	Rating *Rating `json:"rating,omitempty" gorm:"foreignKey:TripID"`
}

// TableName specifies the table name
func (Trip) TableName() string {
	return "trips"
}

// AgentRevenue is the commission on the trip: total price minus the
// amount owed to the vendor. Zero until a vendor price is set.
func (t *Trip) AgentRevenue() float64 {
	if t.TotalPrice != 0 && t.VendorPrice != nil {
		return t.TotalPrice - *t.VendorPrice
	}
	return 0
}

// RemainingAmount is what the customer still owes before finalization.
func (t *Trip) RemainingAmount() float64 {
	return t.TotalPrice - t.AdvancePaid
}

// EffectiveKmRate is the per-kilometer overage charge: the package's
// extra charge when a package is attached, else the vehicle's default.
// Requires Package and Vehicle to be preloaded.
func (t *Trip) EffectiveKmRate() float64 {
	if t.Package != nil {
		return t.Package.ExtraChargePerKm
	}
	if t.Vehicle != nil {
		return t.Vehicle.PricePerKm
	}
	return 0
}

// FinalBalance is the amount still due after all payments, including
// extra-distance billing.
func (t *Trip) FinalBalance() float64 {
	var extraDistance float64
	if t.AdditionalDistance != nil {
		extraDistance = *t.AdditionalDistance
	}
	grandTotal := t.TotalPrice + extraDistance*t.EffectiveKmRate()

	paid := t.AdvancePaid
	if t.FinalPaymentAmount != nil {
		paid += *t.FinalPaymentAmount
	}
	return grandTotal - paid
}
