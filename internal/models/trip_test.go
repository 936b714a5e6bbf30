package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestTripAgentRevenue(t *testing.T) {
	trip := Trip{TotalPrice: 3000.00, VendorPrice: floatPtr(2500.00)}
	assert.Equal(t, 500.00, trip.AgentRevenue())

	// No vendor price agreed yet: no commission to report.
	trip = Trip{TotalPrice: 3000.00}
	assert.Equal(t, 0.0, trip.AgentRevenue())

	trip = Trip{VendorPrice: floatPtr(2500.00)}
	assert.Equal(t, 0.0, trip.AgentRevenue())
}

func TestTripRemainingAmount(t *testing.T) {
	trip := Trip{TotalPrice: 3000.00, AdvancePaid: 1000.00}
	assert.Equal(t, 2000.00, trip.RemainingAmount())

	trip = Trip{TotalPrice: 3000.00}
	assert.Equal(t, 3000.00, trip.RemainingAmount())
}

func TestTripEffectiveKmRate(t *testing.T) {
	vehicle := &Vehicle{PricePerKm: 20.00}

	// Package rate wins when a package is attached.
	trip := Trip{
		Vehicle: vehicle,
		Package: &Package{ExtraChargePerKm: 15.00},
	}
	assert.Equal(t, 15.00, trip.EffectiveKmRate())

	// Vehicle default applies otherwise.
	trip = Trip{Vehicle: vehicle}
	assert.Equal(t, 20.00, trip.EffectiveKmRate())
}

func TestTripFinalBalance(t *testing.T) {
	trip := Trip{
		TotalPrice:         3000.00,
		AdvancePaid:        1000.00,
		AdditionalDistance: floatPtr(10),
		FinalPaymentAmount: floatPtr(500.00),
		Vehicle:            &Vehicle{PricePerKm: 15.00},
	}
	// (3000 + 10*15) - (1000 + 500)
	assert.Equal(t, 1650.00, trip.FinalBalance())

	trip = Trip{TotalPrice: 3000.00, AdvancePaid: 1000.00, Vehicle: &Vehicle{PricePerKm: 15.00}}
	assert.Equal(t, 2000.00, trip.FinalBalance())
}

func TestIsValidTripStatus(t *testing.T) {
	for _, status := range []string{"Upcoming", "On-going", "Completed", "Cancelled"} {
		assert.True(t, IsValidTripStatus(status), status)
	}
	assert.False(t, IsValidTripStatus("Pending"))
	assert.False(t, IsValidTripStatus(""))
}

func TestIsValidVehicleType(t *testing.T) {
	for _, vt := range []string{"Sedan", "Hatchback", "SUV", "Van", "Minibus"} {
		assert.True(t, IsValidVehicleType(vt), vt)
	}
	assert.False(t, IsValidVehicleType("Truck"))
}
