package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/TharunSree/taxi-fleet-backend/internal/config"
	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const companyName = "Aronee Tours"

// Common header template for all emails
const emailHeader = `
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<div style="text-align: center; margin-bottom: 30px; background-color: #f9f9f9; padding: 20px;">
			<h2 style="color: #3e60d5; margin: 0;">Aronee Tours</h2>
		</div>
`

// Common footer template for all emails
const emailFooter = `
		<div style="text-align: center; margin-top: 20px; font-size: 12px; color: #666; border-top: 1px solid #eee; padding-top: 20px;">
			<p>This is an automated message, please do not reply to this email.</p>
			<p>© 2025 Aronee Tours. All rights reserved.</p>
		</div>
	</div>
</body>
</html>
`

// Mailer sends transactional customer notifications.
type Mailer interface {
	SendTripConfirmation(trip *models.Trip) error
	SendTripCancellation(trip *models.Trip) error
}

// SMTPMailer sends mail over SMTP. Transport settings come from the
// environment but the SiteConfiguration row overrides them at send
// time, so an admin can repoint the outbound mail server without a
// restart.
type SMTPMailer struct {
	db  *gorm.DB
	cfg config.SMTPConfig
	log *zap.Logger
}

func NewSMTPMailer(db *gorm.DB, cfg config.SMTPConfig, log *zap.Logger) *SMTPMailer {
	return &SMTPMailer{db: db, cfg: cfg, log: log}
}

// transport resolves the effective SMTP settings, preferring any
// values set on the SiteConfiguration row.
func (m *SMTPMailer) transport() config.SMTPConfig {
	effective := m.cfg

	var siteConfig models.SiteConfiguration
	if err := m.db.First(&siteConfig, models.SiteConfigurationID).Error; err == nil {
		if siteConfig.EmailHost != "" {
			effective.Host = siteConfig.EmailHost
		}
		if siteConfig.EmailPort != 0 {
			effective.Port = siteConfig.EmailPort
		}
		if siteConfig.EmailHostUser != "" {
			effective.User = siteConfig.EmailHostUser
		}
		if siteConfig.EmailHostPassword != "" {
			effective.Password = siteConfig.EmailHostPassword
		}
		if siteConfig.DefaultFromEmail != "" {
			effective.From = siteConfig.DefaultFromEmail
		}
	}

	if effective.From == "" {
		effective.From = effective.User
	}
	return effective
}

func (m *SMTPMailer) sendEmail(to []string, subject, body string) error {
	t := m.transport()
	if t.Host == "" || t.User == "" || t.Password == "" {
		return fmt.Errorf("email configuration not set")
	}

	// Headers
	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", companyName, t.From)
	headers["To"] = strings.Join(to, ",")
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	// Build message
	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + body

	auth := smtp.PlainAuth("", t.User, t.Password, t.Host)

	addr := fmt.Sprintf("%s:%d", t.Host, t.Port)
	if err := smtp.SendMail(addr, auth, t.From, to, []byte(message)); err != nil {
		m.log.Error("failed to send email", zap.Strings("to", to), zap.Error(err))
		return err
	}

	m.log.Info("email sent", zap.Strings("to", to), zap.String("subject", subject))
	return nil
}

// SendTripConfirmation notifies the customer that their booking is
// confirmed. Requires Customer and Vehicle to be preloaded.
func (m *SMTPMailer) SendTripConfirmation(trip *models.Trip) error {
	if trip.Customer == nil || trip.Customer.Email == "" {
		return nil
	}

	subject := fmt.Sprintf("Trip Confirmed: Aronee Booking #%d", trip.ID)
	vehicle := ""
	if trip.Vehicle != nil {
		vehicle = fmt.Sprintf("%s %s (%s)", trip.Vehicle.Make, trip.Vehicle.ModelName, trip.Vehicle.Number)
	}
	body := fmt.Sprintf(emailHeader+`
				<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
					<h1 style="color: #2c3e50; text-align: center;">Booking Confirmed</h1>
					<p>Hello %s,</p>
					<p>Your trip on <strong>%s</strong> has been confirmed.</p>
					<p>Vehicle: <strong>%s</strong></p>
					<p>Total price: <strong>%.2f</strong> (advance paid: %.2f)</p>
					<p>We look forward to serving you.</p>
					<p>Best regards,<br>The Aronee Team</p>
				</div>`+emailFooter,
		trip.Customer.Name,
		trip.TripDate.Format("02 Jan 2006, 03:04 PM"),
		vehicle,
		trip.TotalPrice,
		trip.AdvancePaid,
	)

	return m.sendEmail([]string{trip.Customer.Email}, subject, body)
}

// SendTripCancellation notifies the customer that their trip was
// cancelled. Requires Customer to be preloaded.
func (m *SMTPMailer) SendTripCancellation(trip *models.Trip) error {
	if trip.Customer == nil || trip.Customer.Email == "" {
		return nil
	}

	subject := fmt.Sprintf("Trip Cancelled: Aronee Booking #%d", trip.ID)
	body := fmt.Sprintf(emailHeader+`
				<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
					<h1 style="color: #2c3e50; text-align: center;">Trip Cancelled</h1>
					<p>Hello %s,</p>
					<p>Your trip scheduled for <strong>%s</strong> has been cancelled.</p>
					<p>If you have already paid an advance our staff will contact you about the refund.</p>
					<p>Best regards,<br>The Aronee Team</p>
				</div>`+emailFooter,
		trip.Customer.Name,
		trip.TripDate.Format("02 Jan 2006, 03:04 PM"),
	)

	return m.sendEmail([]string{trip.Customer.Email}, subject, body)
}
