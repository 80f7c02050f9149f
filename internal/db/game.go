package db

import "time"

type Game struct {
	ID           uint      `gorm:"primaryKey"`
	Title        string    `gorm:"size:255;not null;index"`
	PlayerCount  string    `gorm:"size:100"`
	GameType     string    `gorm:"size:100"`
	Playtime     string    `gorm:"size:100"`
	Complexity   string    `gorm:"size:100"`
	SetupTime    string    `gorm:"size:100"`
	GameElements string    `gorm:"size:500"`
	Description  string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
	Ratings      []GameRating `gorm:"constraint:OnDelete:CASCADE"`
	PlayLogs     []PlayLog    `gorm:"constraint:OnDelete:CASCADE"`
}
