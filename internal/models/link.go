package models

import (
	"time"
)

// Link maps a short code to its destination URL. The unique index on
// ShortCode is global (not per-owner) and is the authoritative guard
// against concurrent creation of the same code.
type Link struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   string    `gorm:"size:256;not null;index" json:"owner_id"`
	ShortCode string    `gorm:"unique;not null;size:32" json:"short_code"`
	URL       string    `gorm:"not null;type:text" json:"url"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Link) TableName() string {
	return "links"
}
