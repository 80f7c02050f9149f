package catalog

import (
	"math"
	"strings"
	"time"

	"gamedex/internal/db"

	"gorm.io/gorm"
)

// GameInput carries the editable fields of a game. Updates are field-level
// overwrites: every field is written, empty strings included.
type GameInput struct {
	Title        string
	PlayerCount  string
	GameType     string
	Playtime     string
	Complexity   string
	SetupTime    string
	GameElements string
	Description  string
}

// GameSummary is a game joined with its derived values. AverageRating and
// LastPlayed are nil when the game has no ratings or no play logs.
type GameSummary struct {
	Game          db.Game
	Ratings       map[uint]int
	AverageRating *float64
	LastPlayed    *time.Time
}

// Filter holds the optional list predicates; zero values mean "no filter".
// All set fields are combined with AND.
type Filter struct {
	Search       string
	GameType     string
	GameElements string
	SetupTime    string
	Complexity   string
	Sort         string
}

func (i GameInput) apply(game *db.Game) {
	game.Title = i.Title
	game.PlayerCount = i.PlayerCount
	game.GameType = i.GameType
	game.Playtime = i.Playtime
	game.Complexity = i.Complexity
	game.SetupTime = i.SetupTime
	game.GameElements = i.GameElements
	game.Description = i.Description
}

// CreateGame inserts a game together with the valid subset of ratings in one
// transaction. Out-of-range ratings are dropped, matching the form behavior
// where a malformed rating field never aborts the save.
func (s *Store) CreateGame(input GameInput, ratings map[uint]int) (*db.Game, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	var game db.Game
	input.apply(&game)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&game).Error; err != nil {
			return err
		}
		if err := insertRatings(tx, game.ID, ratings); err != nil {
			return err
		}
		return recordEvent(tx, "game_created", &game.ID, nil, EventPayload{Title: game.Title})
	})
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetGame loads one game by id.
func (s *Store) GetGame(id uint) (*db.Game, error) {
	var game db.Game
	if err := s.db.First(&game, id).Error; err != nil {
		return nil, notFound(err, ErrGameNotFound)
	}
	return &game, nil
}

// UpdateGame overwrites the editable fields and replaces the game's ratings
// with the valid subset of ratings, atomically.
func (s *Store) UpdateGame(id uint, input GameInput, ratings map[uint]int) (*db.Game, error) {
	game, err := s.GetGame(id)
	if err != nil {
		return nil, err
	}
	input.apply(game)
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(game).Error; err != nil {
			return err
		}
		if err := clearAndReplaceRatings(tx, game.ID, ratings); err != nil {
			return err
		}
		return recordEvent(tx, "game_updated", &game.ID, nil, EventPayload{Title: game.Title})
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

// DeleteGame removes a game with all of its ratings and play logs.
func (s *Store) DeleteGame(id uint) error {
	game, err := s.GetGame(id)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", id).Delete(&db.GameRating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", id).Delete(&db.PlayLog{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&db.Game{}, id).Error; err != nil {
			return err
		}
		return recordEvent(tx, "game_deleted", nil, nil, EventPayload{Title: game.Title})
	})
}

// ApplyMetadata overwrites the known descriptive fields that the provider
// returned non-empty. Unknown keys and empty values are ignored, so a
// partial or useless response leaves the record as it was.
func (s *Store) ApplyMetadata(id uint, metadata map[string]string) (*db.Game, error) {
	game, err := s.GetGame(id)
	if err != nil {
		return nil, err
	}
	changed := false
	for key, value := range metadata {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		switch key {
		case "title":
			game.Title = value
		case "player_count":
			game.PlayerCount = value
		case "game_type":
			game.GameType = value
		case "playtime":
			game.Playtime = value
		case "complexity":
			game.Complexity = value
		case "setup_time":
			game.SetupTime = value
		case "game_elements":
			game.GameElements = value
		case "description":
			game.Description = value
		default:
			continue
		}
		changed = true
	}
	if !changed {
		return game, nil
	}
	if err := s.db.Save(game).Error; err != nil {
		return nil, err
	}
	return game, nil
}

// List returns the games matching filter in the requested order, each with
// its ratings map, average, and last-played date. Ratings and play logs are
// batch-loaded in one query each rather than per game.
func (s *Store) List(filter Filter) ([]GameSummary, error) {
	query := s.db.Model(&db.Game{})
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if value := strings.TrimSpace(filter.GameType); value != "" {
		query = query.Where("LOWER(game_type) LIKE ?", "%"+strings.ToLower(value)+"%")
	}
	if value := strings.TrimSpace(filter.GameElements); value != "" {
		query = query.Where("LOWER(game_elements) LIKE ?", "%"+strings.ToLower(value)+"%")
	}
	if value := strings.TrimSpace(filter.SetupTime); value != "" {
		query = query.Where("LOWER(setup_time) LIKE ?", "%"+strings.ToLower(value)+"%")
	}
	if value := strings.TrimSpace(filter.Complexity); value != "" {
		query = query.Where("complexity = ?", value)
	}
	switch filter.Sort {
	case "created_at":
		query = query.Order("created_at DESC")
	case "updated_at":
		query = query.Order("updated_at DESC")
	default:
		// title is the default; unrecognized sort keys fall back to it.
		query = query.Order("title ASC")
	}

	var games []db.Game
	if err := query.Find(&games).Error; err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return []GameSummary{}, nil
	}

	ids := make([]uint, 0, len(games))
	for _, game := range games {
		ids = append(ids, game.ID)
	}

	var ratings []db.GameRating
	if err := s.db.Where("game_id IN ?", ids).Find(&ratings).Error; err != nil {
		return nil, err
	}
	ratingsByGame := make(map[uint]map[uint]int, len(games))
	for _, rating := range ratings {
		if ratingsByGame[rating.GameID] == nil {
			ratingsByGame[rating.GameID] = make(map[uint]int)
		}
		ratingsByGame[rating.GameID][rating.FamilyMemberID] = rating.Rating
	}

	lastPlayed, err := s.lastPlayedByGame(ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]GameSummary, 0, len(games))
	for _, game := range games {
		summary := GameSummary{
			Game:    game,
			Ratings: ratingsByGame[game.ID],
		}
		if summary.Ratings == nil {
			summary.Ratings = map[uint]int{}
		}
		summary.AverageRating = averageOf(summary.Ratings)
		if played, ok := lastPlayed[game.ID]; ok {
			at := played
			summary.LastPlayed = &at
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Summarize builds the derived view for a single game.
func (s *Store) Summarize(game *db.Game) (*GameSummary, error) {
	ratings, err := s.RatingsByMember(game.ID)
	if err != nil {
		return nil, err
	}
	summary := GameSummary{
		Game:          *game,
		Ratings:       ratings,
		AverageRating: averageOf(ratings),
	}
	played, ok, err := s.LastPlayed(game.ID)
	if err != nil {
		return nil, err
	}
	if ok {
		summary.LastPlayed = &played
	}
	return &summary, nil
}

func (s *Store) lastPlayedByGame(ids []uint) (map[uint]time.Time, error) {
	type row struct {
		GameID uint
		Played time.Time
	}
	var rows []row
	err := s.db.Model(&db.PlayLog{}).
		Select("game_id, MAX(played_at) AS played").
		Where("game_id IN ?", ids).
		Group("game_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make(map[uint]time.Time, len(rows))
	for _, r := range rows {
		result[r.GameID] = r.Played
	}
	return result, nil
}

// averageOf returns the mean rating rounded to one decimal place, or nil
// for an empty map.
func averageOf(ratings map[uint]int) *float64 {
	if len(ratings) == 0 {
		return nil
	}
	sum := 0
	for _, value := range ratings {
		sum += value
	}
	avg := math.Round(float64(sum)/float64(len(ratings))*10) / 10
	return &avg
}
