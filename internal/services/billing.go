package services

import "github.com/TharunSree/taxi-fleet-backend/internal/models"

// Bill is the financial breakdown of a trip for invoices. BasePrice is
// the agreed price before finalization; AdditionalCost is the
// extra-distance billing added when the trip was finalized.
type Bill struct {
	BasePrice      float64 `json:"basePrice"`
	AdditionalCost float64 `json:"additionalCost"`
	GrandTotal     float64 `json:"grandTotal"`
	AdvancePaid    float64 `json:"advancePaid"`
	FinalPayment   float64 `json:"finalPayment"`
	BalanceDue     float64 `json:"balanceDue"`
}

// BuildBill reconstructs the invoice breakdown from a trip. After
// finalization TotalPrice already includes the extra-distance cost, so
// the base price is backed out of it. Requires Package and Vehicle to
// be preloaded.
func BuildBill(trip *models.Trip) Bill {
	basePrice := trip.TotalPrice
	var additionalCost float64

	if trip.AdditionalDistance != nil && *trip.AdditionalDistance > 0 {
		additionalCost = *trip.AdditionalDistance * trip.EffectiveKmRate()
		basePrice -= additionalCost
	}

	var finalPayment float64
	if trip.FinalPaymentAmount != nil {
		finalPayment = *trip.FinalPaymentAmount
	}

	grandTotal := basePrice + additionalCost
	return Bill{
		BasePrice:      basePrice,
		AdditionalCost: additionalCost,
		GrandTotal:     grandTotal,
		AdvancePaid:    trip.AdvancePaid,
		FinalPayment:   finalPayment,
		BalanceDue:     grandTotal - trip.AdvancePaid - finalPayment,
	}
}
