package catalog

import (
	"time"

	"gamedex/internal/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ValidRating reports whether value is inside the allowed 1..10 range.
func ValidRating(value int) bool {
	return value >= 1 && value <= 10
}

// UpsertRating stores a member's rating for a game, overwriting any
// previous rating for the same pair. Out-of-range values return
// ErrInvalidRating and touch nothing; callers in the save flows treat that
// as "skip this field".
func (s *Store) UpsertRating(gameID, memberID uint, value int) error {
	if !ValidRating(value) {
		return ErrInvalidRating
	}
	rating := db.GameRating{
		GameID:         gameID,
		FamilyMemberID: memberID,
		Rating:         value,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "game_id"}, {Name: "family_member_id"}},
		DoUpdates: clause.Assignments(map[string]any{"rating": value, "updated_at": time.Now().UTC()}),
	}).Create(&rating).Error
}

// RatingsByMember builds the member-id-to-rating map for one game.
func (s *Store) RatingsByMember(gameID uint) (map[uint]int, error) {
	var ratings []db.GameRating
	if err := s.db.Where("game_id = ?", gameID).Find(&ratings).Error; err != nil {
		return nil, err
	}
	result := make(map[uint]int, len(ratings))
	for _, rating := range ratings {
		result[rating.FamilyMemberID] = rating.Rating
	}
	return result, nil
}

// Average returns the game's mean rating rounded to one decimal, or
// (nil, nil) when the game has no ratings.
func (s *Store) Average(gameID uint) (*float64, error) {
	ratings, err := s.RatingsByMember(gameID)
	if err != nil {
		return nil, err
	}
	return averageOf(ratings), nil
}

// ClearAndReplace deletes all ratings for a game and inserts the valid
// subset of newRatings, inside one transaction so readers never observe the
// cleared-but-not-replaced window.
func (s *Store) ClearAndReplace(gameID uint, newRatings map[uint]int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return clearAndReplaceRatings(tx, gameID, newRatings)
	})
}

func clearAndReplaceRatings(tx *gorm.DB, gameID uint, newRatings map[uint]int) error {
	if err := tx.Where("game_id = ?", gameID).Delete(&db.GameRating{}).Error; err != nil {
		return err
	}
	return insertRatings(tx, gameID, newRatings)
}

func insertRatings(tx *gorm.DB, gameID uint, ratings map[uint]int) error {
	for memberID, value := range ratings {
		if !ValidRating(value) {
			continue
		}
		rating := db.GameRating{
			GameID:         gameID,
			FamilyMemberID: memberID,
			Rating:         value,
		}
		if err := tx.Create(&rating).Error; err != nil {
			return err
		}
	}
	return nil
}
