package handlers_test

import (
	"fmt"
	"testing"

	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomer(t *testing.T) {
	env := newTestEnv(t)

	w := env.request("POST", "/api/customers", map[string]interface{}{
		"name":         "Asha Nair",
		"phone":        "9400000001",
		"email":        "asha@example.com",
		"fromLocation": "Kochi",
		"toLocation":   "Munnar",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	assert.Equal(t, "Customer 'Asha Nair' was created", env.lastAuditMessage())
}

func TestCreateCustomerDuplicatePhone(t *testing.T) {
	env := newTestEnv(t)
	env.seedCustomer("Asha Nair", "9400000001", "")

	w := env.request("POST", "/api/customers", map[string]interface{}{
		"name":  "Other Person",
		"phone": "9400000001",
	})
	assert.Equal(t, 400, w.Code)
}

func TestCreateCustomerInvalidVehiclePreference(t *testing.T) {
	env := newTestEnv(t)

	w := env.request("POST", "/api/customers", map[string]interface{}{
		"name":                "Asha Nair",
		"phone":               "9400000001",
		"vehicleTypeSelected": "Rickshaw",
	})
	assert.Equal(t, 400, w.Code)
}

func TestUpdateCustomer(t *testing.T) {
	env := newTestEnv(t)
	customer := env.seedCustomer("Asha Nair", "9400000001", "")

	w := env.request("PUT", fmt.Sprintf("/api/customers/%d", customer.ID), map[string]interface{}{
		"name":  "Asha N",
		"phone": "9400000002",
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	var stored models.Customer
	require.NoError(t, env.db.First(&stored, customer.ID).Error)
	assert.Equal(t, "Asha N", stored.Name)
	assert.Equal(t, "9400000002", stored.Phone)
	assert.Equal(t, "Customer 'Asha N' was updated", env.lastAuditMessage())
}

func TestDeleteCustomerBlockedByTrips(t *testing.T) {
	env := newTestEnv(t)
	customer := env.seedCustomer("Asha Nair", "9400000001", "")
	vendor := env.seedVendor("Highland Travels", "Idukki")
	vehicle := env.seedVehicle(vendor.ID, "KL-06-7777", 15.00)
	env.seedTrip(&models.Trip{CustomerID: customer.ID, VehicleID: vehicle.ID})

	w := env.request("DELETE", fmt.Sprintf("/api/customers/%d", customer.ID), nil)
	assert.Equal(t, 409, w.Code)

	var count int64
	env.db.Model(&models.Customer{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteCustomer(t *testing.T) {
	env := newTestEnv(t)
	customer := env.seedCustomer("Asha Nair", "9400000001", "")

	w := env.request("DELETE", fmt.Sprintf("/api/customers/%d", customer.ID), nil)
	require.Equal(t, 200, w.Code, w.Body.String())

	var count int64
	env.db.Model(&models.Customer{}).Count(&count)
	assert.Equal(t, int64(0), count)
	assert.Equal(t, "Customer 'Asha Nair' was deleted", env.lastAuditMessage())
}

func TestGetCustomersSearch(t *testing.T) {
	env := newTestEnv(t)
	env.seedCustomer("Asha Nair", "9400000001", "")
	env.seedCustomer("Binu Thomas", "9500000002", "")

	w := env.request("GET", "/api/customers?search=asha", nil)
	require.Equal(t, 200, w.Code)
	results := decodeList(t, w)
	require.Len(t, results, 1)
	assert.Equal(t, "Asha Nair", results[0]["name"])

	// Phone fragments match too.
	w = env.request("GET", "/api/customers?search=95000", nil)
	require.Equal(t, 200, w.Code)
	results = decodeList(t, w)
	require.Len(t, results, 1)
	assert.Equal(t, "Binu Thomas", results[0]["name"])
}
