package audit

import (
	"fmt"
	"time"

	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Recorder appends entries to the action log. Handlers call it
// explicitly after each mutation; there is no ORM-level hook.
//
// Two rules apply to every call: an event with no acting user is
// silently dropped, and a failed write is logged for the operator but
// never surfaced to the caller, so audit logging can never block the
// primary mutation.
type Recorder struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewRecorder(db *gorm.DB, log *zap.Logger) *Recorder {
	return &Recorder{db: db, log: log}
}

// Saved records a create or update of a domain record. The created
// flag picks between the addition and change actions.
func (r *Recorder) Saved(actor *models.User, contentType string, objectID uint, objectRepr string, created bool, message string) {
	action := models.AuditActionChange
	if created {
		action = models.AuditActionAddition
	}
	r.record(actor, contentType, objectID, objectRepr, action, message)
}

// Deleted records a deletion of a domain record.
func (r *Recorder) Deleted(actor *models.User, contentType string, objectID uint, objectRepr string, message string) {
	r.record(actor, contentType, objectID, objectRepr, models.AuditActionDeletion, message)
}

// Session records a login or logout against the acting user itself.
func (r *Recorder) Session(actor *models.User, message string) {
	if actor == nil {
		return
	}
	r.record(actor, "user", actor.ID, actor.Username, models.AuditActionChange, message)
}

func (r *Recorder) record(actor *models.User, contentType string, objectID uint, objectRepr string, action models.AuditAction, message string) {
	if actor == nil {
		// No resolvable current user: drop the event.
		return
	}

	entry := models.AuditLog{
		UserID:      actor.ID,
		Username:    actor.Username,
		ContentType: contentType,
		ObjectID:    objectID,
		ObjectRepr:  objectRepr,
		Action:      action,
		Message:     message,
		ActionTime:  time.Now(),
	}

	if err := r.db.Create(&entry).Error; err != nil {
		r.log.Error("failed to write audit log entry",
			zap.String("contentType", contentType),
			zap.Uint("objectId", objectID),
			zap.String("action", string(action)),
			zap.Error(err),
		)
	}
}

// TripRepr renders a trip the way log entries reference it.
func TripRepr(id uint) string {
	return fmt.Sprintf("Trip #%d", id)
}
