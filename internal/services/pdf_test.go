package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pdfFixtureTrip() *models.Trip {
	vendor := &models.Vendor{Name: "Highland Travels", District: "Idukki"}
	trip := &models.Trip{
		TripDate:    time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
		TotalPrice:  3150.00,
		AdvancePaid: 1000.00,
		VendorPrice: floatPtr(2500.00),
		Customer: &models.Customer{
			Name:         "Asha Nair",
			Phone:        "9400000001",
			FromLocation: "Kochi",
			ToLocation:   "Munnar",
		},
		Vehicle: &models.Vehicle{
			Number:     "KL-06-7777",
			Make:       "Toyota",
			ModelName:  "Etios",
			PricePerKm: 15.00,
			Vendor:     vendor,
		},
		AdditionalDistance: floatPtr(10),
		FinalPaymentAmount: floatPtr(2150.00),
	}
	return trip
}

func TestCustomerConfirmationPDF(t *testing.T) {
	data, err := CustomerConfirmationPDF(pdfFixtureTrip())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Greater(t, len(data), 500)
}

func TestVendorOrderPDF(t *testing.T) {
	data, err := VendorOrderPDF(pdfFixtureTrip())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestPDFHandlesSparseTrip(t *testing.T) {
	// A trip with nothing preloaded still renders.
	trip := &models.Trip{TripDate: time.Now()}

	_, err := CustomerConfirmationPDF(trip)
	assert.NoError(t, err)

	_, err = VendorOrderPDF(trip)
	assert.NoError(t, err)
}
