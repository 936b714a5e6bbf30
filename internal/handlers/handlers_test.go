package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TharunSree/taxi-fleet-backend/internal/audit"
	"github.com/TharunSree/taxi-fleet-backend/internal/config"
	"github.com/TharunSree/taxi-fleet-backend/internal/database"
	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"github.com/TharunSree/taxi-fleet-backend/internal/routes"
	"github.com/TharunSree/taxi-fleet-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fakeMailer records sends instead of talking to an SMTP server.
type fakeMailer struct {
	confirmations []uint
	cancellations []uint
	err           error
}

func (m *fakeMailer) SendTripConfirmation(trip *models.Trip) error {
	m.confirmations = append(m.confirmations, trip.ID)
	return m.err
}

func (m *fakeMailer) SendTripCancellation(trip *models.Trip) error {
	m.cancellations = append(m.cancellations, trip.ID)
	return m.err
}

type testEnv struct {
	t      *testing.T
	router *gin.Engine
	db     *gorm.DB
	mailer *fakeMailer

	admin      *models.User
	adminToken string
}

type envOptions struct {
	cancelFailSilently bool
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWith(t, envOptions{cancelFailSilently: true})
}

func newTestEnvWith(t *testing.T, opts envOptions) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	admin := &models.User{
		Username:    "admin",
		Email:       "admin@example.com",
		Password:    "admin-pass",
		IsSuperuser: true,
	}
	require.NoError(t, admin.HashPassword())
	require.NoError(t, db.Create(admin).Error)

	token, err := utils.GenerateToken(admin)
	require.NoError(t, err)

	mailer := &fakeMailer{}
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0", Environment: "development"},
		Mail:   config.MailConfig{CancelFailSilently: opts.cancelFailSilently},
	}

	router := routes.Setup(routes.Deps{
		DB:       db,
		Config:   cfg,
		Logger:   zap.NewNop(),
		Recorder: audit.NewRecorder(db, zap.NewNop()),
		Mailer:   mailer,
		Tokens:   nil,
	})

	return &testEnv{
		t:          t,
		router:     router,
		db:         db,
		mailer:     mailer,
		admin:      admin,
		adminToken: token,
	}
}

// createStaff adds a non-superuser staff account and returns its token.
func (e *testEnv) createStaff(username string) (*models.User, string) {
	e.t.Helper()
	user := &models.User{Username: username, Password: "staff-pass"}
	require.NoError(e.t, user.HashPassword())
	require.NoError(e.t, e.db.Create(user).Error)

	token, err := utils.GenerateToken(user)
	require.NoError(e.t, err)
	return user, token
}

func (e *testEnv) requestAs(token, method, path string, body interface{}) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// request performs an authenticated call as the seeded superuser.
func (e *testEnv) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	return e.requestAs(e.adminToken, method, path, body)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (e *testEnv) seedCustomer(name, phone, email string) *models.Customer {
	e.t.Helper()
	customer := &models.Customer{Name: name, Phone: phone, Email: email}
	require.NoError(e.t, e.db.Create(customer).Error)
	return customer
}

func (e *testEnv) seedVendor(name, district string) *models.Vendor {
	e.t.Helper()
	vendor := &models.Vendor{Name: name, District: district, Area: "Central"}
	require.NoError(e.t, e.db.Create(vendor).Error)
	return vendor
}

func (e *testEnv) seedVehicle(vendorID uint, number string, pricePerKm float64) *models.Vehicle {
	e.t.Helper()
	vehicle := &models.Vehicle{
		Number:     number,
		Type:       string(models.VehicleTypeSedan),
		Make:       "Toyota",
		ModelName:  "Etios",
		VendorID:   vendorID,
		PricePerKm: pricePerKm,
	}
	require.NoError(e.t, e.db.Create(vehicle).Error)
	return vehicle
}

func (e *testEnv) seedPackage(name string, charges, extraPerKm float64) *models.Package {
	e.t.Helper()
	pkg := &models.Package{
		Name:             name,
		VehicleType:      string(models.VehicleTypeSUV),
		VehicleModel:     "Innova",
		Charges:          charges,
		ExtraChargePerKm: extraPerKm,
	}
	require.NoError(e.t, e.db.Create(pkg).Error)
	return pkg
}

func (e *testEnv) seedTrip(trip *models.Trip) *models.Trip {
	e.t.Helper()
	if trip.Status == "" {
		trip.Status = string(models.TripStatusUpcoming)
	}
	if trip.TripDate.IsZero() {
		trip.TripDate = time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	}
	require.NoError(e.t, e.db.Create(trip).Error)
	return trip
}

// auditEntries returns every audit log row, oldest first.
func (e *testEnv) auditEntries() []models.AuditLog {
	e.t.Helper()
	var entries []models.AuditLog
	require.NoError(e.t, e.db.Order("id ASC").Find(&entries).Error)
	return entries
}

func (e *testEnv) lastAuditMessage() string {
	e.t.Helper()
	entries := e.auditEntries()
	require.NotEmpty(e.t, entries)
	return entries[len(entries)-1].Message
}
