package db

import "time"

type GameRating struct {
	ID             uint      `gorm:"primaryKey"`
	GameID         uint      `gorm:"index;not null;uniqueIndex:idx_ratings_game_member"`
	FamilyMemberID uint      `gorm:"index;not null;uniqueIndex:idx_ratings_game_member"`
	Rating         int       `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}
