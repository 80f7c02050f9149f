package db

import "time"

type PlayLog struct {
	ID              uint      `gorm:"primaryKey"`
	GameID          uint      `gorm:"index;not null"`
	PlayedAt        time.Time `gorm:"not null;index"`
	Players         string    `gorm:"size:500"`
	Winner          string    `gorm:"size:100"`
	Notes           string    `gorm:"type:text"`
	DurationMinutes int       `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}
