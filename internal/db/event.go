package db

import (
	"time"

	"gorm.io/datatypes"
)

// Event is an append-only activity log row. Payload carries the
// event-specific fields as JSON.
type Event struct {
	ID        uint           `gorm:"primaryKey"`
	GameID    *uint          `gorm:"index"`
	MemberID  *uint          `gorm:"index"`
	Type      string         `gorm:"size:64;not null"`
	Payload   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"not null"`
}
