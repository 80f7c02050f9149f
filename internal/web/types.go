// Package web holds the data shapes the presentation layer consumes. The
// server marshals these as JSON; rendering itself lives outside this
// repository.
package web

import (
	"encoding/json"
	"time"
)

type GameView struct {
	ID            uint         `json:"id"`
	Title         string       `json:"title"`
	PlayerCount   string       `json:"player_count,omitempty"`
	GameType      string       `json:"game_type,omitempty"`
	Playtime      string       `json:"playtime,omitempty"`
	Complexity    string       `json:"complexity,omitempty"`
	SetupTime     string       `json:"setup_time,omitempty"`
	GameElements  string       `json:"game_elements,omitempty"`
	Description   string       `json:"description,omitempty"`
	AverageRating *float64     `json:"average_rating,omitempty"`
	LastPlayed    *time.Time   `json:"last_played,omitempty"`
	Ratings       map[uint]int `json:"ratings"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type MemberView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type PlayLogView struct {
	ID              uint      `json:"id"`
	GameID          uint      `json:"game_id"`
	GameTitle       string    `json:"game_title,omitempty"`
	PlayedAt        time.Time `json:"played_at"`
	Players         string    `json:"players,omitempty"`
	Winner          string    `json:"winner,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
}

type RecommendationView struct {
	Title     string `json:"title"`
	Reasoning string `json:"reasoning"`
}

type EventView struct {
	ID        uint            `json:"id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

type PaginationData struct {
	BasePath   string `json:"base_path,omitempty"`
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	HasPrev    bool   `json:"has_prev"`
	HasNext    bool   `json:"has_next"`
	PrevPage   int    `json:"prev_page,omitempty"`
	NextPage   int    `json:"next_page,omitempty"`
}
