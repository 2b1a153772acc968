package models

import "gorm.io/datatypes"

// Audit actions recorded by the listing module.
const (
	AuditListingCreated   = "listing.created"
	AuditListingUpdated   = "listing.updated"
	AuditListingDeleted   = "listing.deleted"
	AuditStatusChanged    = "listing.status_changed"
	AuditSpecificsWritten = "listing.specifics_written"
)

// AuditLogModel records who did what to which listing. Payload carries the
// action-specific detail (old/new status, specifics version, error counts).
type AuditLogModel struct {
	Base
	UserID     string         `json:"user_id"     gorm:"type:char(36);index"`
	Action     string         `json:"action"      gorm:"type:varchar(50);index;not null"`
	TargetType string         `json:"target_type" gorm:"type:varchar(30);not null"`
	TargetID   string         `json:"target_id"   gorm:"type:char(36);index"`
	Payload    datatypes.JSON `json:"payload,omitempty"`
}

func (AuditLogModel) TableName() string { return "audit_logs" }
