package handlers_test

import (
	"fmt"
	"testing"

	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVehicleDefaultsPricePerKm(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.seedVendor("Highland Travels", "Idukki")

	w := env.request("POST", "/api/vehicles", map[string]interface{}{
		"number":   "KL-06-7777",
		"type":     "Sedan",
		"make":     "Toyota",
		"model":    "Etios",
		"vendorId": vendor.ID,
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, 20.00, body["pricePerKm"])
	assert.Equal(t, "Vehicle 'KL-06-7777' was created", env.lastAuditMessage())
}

func TestCreateVehicleInvalidType(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.seedVendor("Highland Travels", "Idukki")

	w := env.request("POST", "/api/vehicles", map[string]interface{}{
		"number":   "KL-06-7777",
		"type":     "Truck",
		"make":     "Tata",
		"model":    "407",
		"vendorId": vendor.ID,
	})
	assert.Equal(t, 400, w.Code)
}

func TestCreateVehicleUnknownVendor(t *testing.T) {
	env := newTestEnv(t)

	w := env.request("POST", "/api/vehicles", map[string]interface{}{
		"number":   "KL-06-7777",
		"type":     "Sedan",
		"make":     "Toyota",
		"model":    "Etios",
		"vendorId": 42,
	})
	assert.Equal(t, 404, w.Code)
}

func TestGetVehiclesFilteredByDistrict(t *testing.T) {
	env := newTestEnv(t)
	idukki := env.seedVendor("Highland Travels", "Idukki")
	ernakulam := env.seedVendor("Coastal Cabs", "Ernakulam")
	env.seedVehicle(idukki.ID, "KL-06-7777", 15.00)
	env.seedVehicle(ernakulam.ID, "KL-07-1234", 18.00)

	w := env.request("GET", "/api/vehicles?district=Idukki", nil)
	require.Equal(t, 200, w.Code)
	results := decodeList(t, w)
	require.Len(t, results, 1)
	assert.Equal(t, "KL-06-7777", results[0]["number"])
}

func TestGetVehiclesByVendorDropdown(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.seedVendor("Highland Travels", "Idukki")
	env.seedVehicle(vendor.ID, "KL-06-7777", 15.00)

	w := env.request("GET", fmt.Sprintf("/api/vehicles/by-vendor?vendor_id=%d", vendor.ID), nil)
	require.Equal(t, 200, w.Code)

	results := decodeList(t, w)
	require.Len(t, results, 1)
	assert.Equal(t, "KL-06-7777 - Toyota Etios (Highland Travels)", results[0]["name"])
}

func TestDeleteVehicleBlockedByTrips(t *testing.T) {
	env := newTestEnv(t)
	customer := env.seedCustomer("Asha Nair", "9400000001", "")
	vendor := env.seedVendor("Highland Travels", "Idukki")
	vehicle := env.seedVehicle(vendor.ID, "KL-06-7777", 15.00)
	env.seedTrip(&models.Trip{CustomerID: customer.ID, VehicleID: vehicle.ID})

	w := env.request("DELETE", fmt.Sprintf("/api/vehicles/%d", vehicle.ID), nil)
	assert.Equal(t, 409, w.Code)
}

func TestDeleteVehicle(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.seedVendor("Highland Travels", "Idukki")
	vehicle := env.seedVehicle(vendor.ID, "KL-06-7777", 15.00)

	w := env.request("DELETE", fmt.Sprintf("/api/vehicles/%d", vehicle.ID), nil)
	require.Equal(t, 200, w.Code, w.Body.String())
	assert.Equal(t, "Vehicle 'KL-06-7777' was deleted", env.lastAuditMessage())
}
