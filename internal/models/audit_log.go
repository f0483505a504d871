package models

import (
	"time"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   string    `gorm:"size:256;index" json:"owner_id"`   // Empty for anonymous actions (e.g. failed logins)
	Action    string    `gorm:"size:50;not null" json:"action"`   // e.g. "CREATE_LINK", "DELETE_LINK"
	EntityID  string    `gorm:"size:50" json:"entity_id"`         // Short code or user id affected
	Details   string    `gorm:"type:text" json:"details"`         // JSON blob
	IPAddress string    `gorm:"size:45" json:"ip_address"`
	Timestamp time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"timestamp"`
}
