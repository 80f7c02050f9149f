package db

import "time"

type FamilyMember struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:100;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
	Ratings   []GameRating `gorm:"constraint:OnDelete:CASCADE"`
}
