package services

import (
	"testing"

	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestBuildBillBeforeFinalization(t *testing.T) {
	trip := &models.Trip{
		TotalPrice:  3000.00,
		AdvancePaid: 1000.00,
		Vehicle:     &models.Vehicle{PricePerKm: 15.00},
	}

	bill := BuildBill(trip)
	assert.Equal(t, 3000.00, bill.BasePrice)
	assert.Equal(t, 0.0, bill.AdditionalCost)
	assert.Equal(t, 3000.00, bill.GrandTotal)
	assert.Equal(t, 2000.00, bill.BalanceDue)
}

func TestBuildBillBacksOutFinalization(t *testing.T) {
	// Finalized trip: 3000 base + 10 km at 15/km already folded into
	// the stored total.
	trip := &models.Trip{
		TotalPrice:         3150.00,
		AdvancePaid:        1000.00,
		AdditionalDistance: floatPtr(10),
		FinalPaymentAmount: floatPtr(2000.00),
		Vehicle:            &models.Vehicle{PricePerKm: 15.00},
	}

	bill := BuildBill(trip)
	assert.Equal(t, 3000.00, bill.BasePrice)
	assert.Equal(t, 150.00, bill.AdditionalCost)
	assert.Equal(t, 3150.00, bill.GrandTotal)
	assert.Equal(t, 2000.00, bill.FinalPayment)
	assert.Equal(t, 150.00, bill.BalanceDue)
}

func TestBuildBillPrefersPackageRate(t *testing.T) {
	trip := &models.Trip{
		TotalPrice:         3250.00,
		AdditionalDistance: floatPtr(10),
		Vehicle:            &models.Vehicle{PricePerKm: 15.00},
		Package:            &models.Package{ExtraChargePerKm: 25.00},
	}

	bill := BuildBill(trip)
	assert.Equal(t, 250.00, bill.AdditionalCost)
	assert.Equal(t, 3000.00, bill.BasePrice)
}
