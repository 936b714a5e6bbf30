package models

import (
	"time"

	"gorm.io/gorm"
)

type AuditAction string

const (
	AuditActionAddition AuditAction = "addition"
	AuditActionChange   AuditAction = "change"
	AuditActionDeletion AuditAction = "deletion"
)

// AuditLog is an append-only record of staff actions. Rows are only
// ever inserted; the application never updates or deletes them.
type AuditLog struct {
	gorm.Model
	UserID      uint        `json:"userId" gorm:"column:user_id;not null;index"`
	Username    string      `json:"username" gorm:"column:username;not null"`
	ContentType string      `json:"contentType" gorm:"column:content_type;not null;index"`
	ObjectID    uint        `json:"objectId" gorm:"column:object_id;not null"`
	ObjectRepr  string      `json:"objectRepr" gorm:"column:object_repr;not null"`
	Action      AuditAction `json:"action" gorm:"column:action;not null"`
	Message     string      `json:"message" gorm:"column:message"`
	ActionTime  time.Time   `json:"actionTime" gorm:"column:action_time;not null"`
}

// TableName specifies the table name
func (AuditLog) TableName() string {
	return "audit_logs"
}
