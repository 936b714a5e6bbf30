package services

import (
	"testing"

	"github.com/TharunSree/taxi-fleet-backend/internal/config"
	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newMailerDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SiteConfiguration{}))
	return db
}

func TestTransportUsesEnvDefaults(t *testing.T) {
	db := newMailerDB(t)
	mailer := NewSMTPMailer(db, config.SMTPConfig{
		Host:     "smtp.env.example.com",
		Port:     587,
		User:     "env-user@example.com",
		Password: "env-pass",
		From:     "noreply@example.com",
	}, zap.NewNop())

	effective := mailer.transport()
	assert.Equal(t, "smtp.env.example.com", effective.Host)
	assert.Equal(t, 587, effective.Port)
	assert.Equal(t, "noreply@example.com", effective.From)
}

func TestTransportPrefersSiteConfiguration(t *testing.T) {
	db := newMailerDB(t)
	siteConfig := models.SiteConfiguration{
		EmailHost:         "smtp.site.example.com",
		EmailPort:         465,
		EmailHostUser:     "site-user@example.com",
		EmailHostPassword: "site-pass",
	}
	siteConfig.ID = models.SiteConfigurationID
	require.NoError(t, db.Create(&siteConfig).Error)

	mailer := NewSMTPMailer(db, config.SMTPConfig{
		Host:     "smtp.env.example.com",
		Port:     587,
		User:     "env-user@example.com",
		Password: "env-pass",
		From:     "noreply@example.com",
	}, zap.NewNop())

	effective := mailer.transport()
	assert.Equal(t, "smtp.site.example.com", effective.Host)
	assert.Equal(t, 465, effective.Port)
	assert.Equal(t, "site-user@example.com", effective.User)
	assert.Equal(t, "site-pass", effective.Password)
	// Fields the row leaves empty keep their env values.
	assert.Equal(t, "noreply@example.com", effective.From)
}

func TestTransportDefaultsFromToUser(t *testing.T) {
	db := newMailerDB(t)
	mailer := NewSMTPMailer(db, config.SMTPConfig{
		Host:     "smtp.env.example.com",
		User:     "env-user@example.com",
		Password: "env-pass",
	}, zap.NewNop())

	assert.Equal(t, "env-user@example.com", mailer.transport().From)
}

func TestSendEmailRequiresConfiguration(t *testing.T) {
	db := newMailerDB(t)
	mailer := NewSMTPMailer(db, config.SMTPConfig{}, zap.NewNop())

	err := mailer.sendEmail([]string{"asha@example.com"}, "subject", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email configuration not set")
}

func TestSendTripConfirmationSkipsWithoutAddress(t *testing.T) {
	db := newMailerDB(t)
	mailer := NewSMTPMailer(db, config.SMTPConfig{}, zap.NewNop())

	// No customer at all.
	assert.NoError(t, mailer.SendTripConfirmation(&models.Trip{}))

	// Customer on file but no email address.
	trip := &models.Trip{Customer: &models.Customer{Name: "Asha Nair", Phone: "9400000001"}}
	assert.NoError(t, mailer.SendTripConfirmation(trip))
	assert.NoError(t, mailer.SendTripCancellation(trip))
}
