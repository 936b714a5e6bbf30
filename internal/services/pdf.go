package services

import (
	"bytes"
	"fmt"

	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"github.com/jung-kurt/gofpdf"
)

func newDocument(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, companyName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(120, 120, 120)
	pdf.Cell(0, 6, "Fleet Booking & Billing")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, title)
	pdf.Ln(12)

	return pdf
}

func addRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(55, 7, label)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 7, value)
	pdf.Ln(7)
}

func addAmountRow(pdf *gofpdf.Fpdf, label string, amount float64) {
	addRow(pdf, label, fmt.Sprintf("%.2f", amount))
}

// CustomerConfirmationPDF renders the booking confirmation handed to
// the customer. Requires Customer and Vehicle to be preloaded.
func CustomerConfirmationPDF(trip *models.Trip) ([]byte, error) {
	pdf := newDocument(fmt.Sprintf("Customer Confirmation - Trip #%d", trip.ID))

	if trip.Customer != nil {
		addRow(pdf, "Customer", trip.Customer.Name)
		addRow(pdf, "Phone", trip.Customer.Phone)
	}
	addRow(pdf, "Trip Date", trip.TripDate.Format("02 Jan 2006, 03:04 PM"))
	if trip.Vehicle != nil {
		addRow(pdf, "Vehicle", fmt.Sprintf("%s %s (%s)", trip.Vehicle.Make, trip.Vehicle.ModelName, trip.Vehicle.Number))
	}
	if trip.Package != nil {
		addRow(pdf, "Package", trip.Package.Name)
	}
	pdf.Ln(5)

	bill := BuildBill(trip)
	addAmountRow(pdf, "Base Price", bill.BasePrice)
	if bill.AdditionalCost > 0 {
		addAmountRow(pdf, "Extra Distance Charges", bill.AdditionalCost)
	}
	addAmountRow(pdf, "Grand Total", bill.GrandTotal)
	addAmountRow(pdf, "Advance Paid", bill.AdvancePaid)
	if bill.FinalPayment > 0 {
		addAmountRow(pdf, "Final Payment", bill.FinalPayment)
	}
	addAmountRow(pdf, "Balance Due", bill.BalanceDue)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// VendorOrderPDF renders the order sheet sent to the vendor supplying
// the vehicle. Requires Customer, Vehicle and Vehicle.Vendor to be
// preloaded.
func VendorOrderPDF(trip *models.Trip) ([]byte, error) {
	pdf := newDocument(fmt.Sprintf("Vendor Order - Trip #%d", trip.ID))

	if trip.Vehicle != nil && trip.Vehicle.Vendor != nil {
		addRow(pdf, "Vendor", trip.Vehicle.Vendor.Name)
		addRow(pdf, "District", trip.Vehicle.Vendor.District)
	}
	if trip.Vehicle != nil {
		addRow(pdf, "Vehicle", fmt.Sprintf("%s %s (%s)", trip.Vehicle.Make, trip.Vehicle.ModelName, trip.Vehicle.Number))
	}
	addRow(pdf, "Trip Date", trip.TripDate.Format("02 Jan 2006, 03:04 PM"))
	if trip.Customer != nil {
		addRow(pdf, "Customer", trip.Customer.Name)
		addRow(pdf, "Pickup", trip.Customer.FromLocation)
		addRow(pdf, "Drop", trip.Customer.ToLocation)
	}
	pdf.Ln(5)

	if trip.VendorPrice != nil {
		addAmountRow(pdf, "Vendor Price", *trip.VendorPrice)
		balance := *trip.VendorPrice
		if trip.VendorAdvance != nil {
			addAmountRow(pdf, "Advance Paid to Vendor", *trip.VendorAdvance)
			balance -= *trip.VendorAdvance
		}
		addAmountRow(pdf, "Balance to Vendor", balance)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
