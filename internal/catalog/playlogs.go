package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gamedex/internal/db"

	"gorm.io/gorm"
)

// playedAtLayouts are the accepted played_at formats, tried in order.
// HTML datetime-local inputs produce the minute-precision layout.
var playedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParsePlayedAt parses an ISO-8601-like timestamp and returns
// ErrInvalidTimestamp for anything unparseable.
func ParsePlayedAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range playedAtLayouts {
		if at, err := time.Parse(layout, raw); err == nil {
			return at, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
}

// PlayLogInput carries the submitted fields of a play session.
type PlayLogInput struct {
	PlayedAt        string
	Players         string
	Winner          string
	Notes           string
	DurationMinutes int
}

func (i PlayLogInput) validate() (time.Time, error) {
	at, err := ParsePlayedAt(i.PlayedAt)
	if err != nil {
		return time.Time{}, err
	}
	if i.DurationMinutes <= 0 {
		return time.Time{}, ErrInvalidDuration
	}
	return at, nil
}

// PlayLogEntry is a play log joined with its game's title for listings.
type PlayLogEntry struct {
	db.PlayLog
	GameTitle string
}

// RecordPlay appends a play session for a game. The record is immutable at
// creation; edits go through UpdatePlayLog.
func (s *Store) RecordPlay(gameID uint, input PlayLogInput) (*db.PlayLog, error) {
	if _, err := s.GetGame(gameID); err != nil {
		return nil, err
	}
	at, err := input.validate()
	if err != nil {
		return nil, err
	}
	entry := db.PlayLog{
		GameID:          gameID,
		PlayedAt:        at,
		Players:         strings.TrimSpace(input.Players),
		Winner:          strings.TrimSpace(input.Winner),
		Notes:           strings.TrimSpace(input.Notes),
		DurationMinutes: input.DurationMinutes,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return recordEvent(tx, "play_logged", &gameID, nil, EventPayload{
			PlayLogID: entry.ID,
			PlayedAt:  at.Format(time.RFC3339),
		})
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdatePlayLog overwrites an existing play log with the same validation as
// RecordPlay.
func (s *Store) UpdatePlayLog(id uint, input PlayLogInput) (*db.PlayLog, error) {
	var entry db.PlayLog
	if err := s.db.First(&entry, id).Error; err != nil {
		return nil, notFound(err, ErrPlayLogNotFound)
	}
	at, err := input.validate()
	if err != nil {
		return nil, err
	}
	entry.PlayedAt = at
	entry.Players = strings.TrimSpace(input.Players)
	entry.Winner = strings.TrimSpace(input.Winner)
	entry.Notes = strings.TrimSpace(input.Notes)
	entry.DurationMinutes = input.DurationMinutes
	if err := s.db.Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeletePlayLog removes one play log. Play logs have no dependents, so
// there is nothing to cascade.
func (s *Store) DeletePlayLog(id uint) error {
	result := s.db.Delete(&db.PlayLog{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlayLogNotFound
	}
	return nil
}

// LastPlayed returns the most recent played_at for a game, with ok=false
// when the game has no play logs.
func (s *Store) LastPlayed(gameID uint) (time.Time, bool, error) {
	var entry db.PlayLog
	err := s.db.Where("game_id = ?", gameID).Order("played_at DESC").First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}
	return entry.PlayedAt, true, nil
}

// ListPlayLogs returns one page of play logs ordered by played_at
// descending, joined with their game titles, plus the total count. Pages
// are 1-indexed; a page past the end yields an empty slice, not an error.
func (s *Store) ListPlayLogs(page, perPage int) ([]PlayLogEntry, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	var total int64
	if err := s.db.Model(&db.PlayLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var entries []PlayLogEntry
	err := s.db.Model(&db.PlayLog{}).
		Select("play_logs.*, games.title AS game_title").
		Joins("JOIN games ON games.id = play_logs.game_id").
		Order("play_logs.played_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Scan(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
