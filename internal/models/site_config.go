package models

import "gorm.io/gorm"

// SiteConfigurationID is the primary key of the single settings row.
const SiteConfigurationID uint = 1

// SiteConfiguration holds outbound-email transport settings editable by
// an admin at runtime. Fields left empty fall back to the env-level
// SMTP defaults; the mailer reads this row at send time.
type SiteConfiguration struct {
	gorm.Model
	EmailHost         string `json:"emailHost" gorm:"column:email_host"` // e.g., smtp.gmail.com
	EmailPort         int    `json:"emailPort" gorm:"column:email_port;default:587"`
	EmailHostUser     string `json:"emailHostUser" gorm:"column:email_host_user"`
	EmailHostPassword string `json:"-" gorm:"column:email_host_password"`
	EmailUseTLS       bool   `json:"emailUseTLS" gorm:"column:email_use_tls;default:true"`
	DefaultFromEmail  string `json:"defaultFromEmail" gorm:"column:default_from_email"`
}

// TableName specifies the table name
func (SiteConfiguration) TableName() string {
	return "site_configurations"
}
