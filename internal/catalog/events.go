package catalog

import (
	"encoding/json"

	"gamedex/internal/db"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EventPayload is the JSON body of an activity event. Only the fields
// relevant to the event type are set.
type EventPayload struct {
	Title     string `json:"title,omitempty"`
	Name      string `json:"name,omitempty"`
	PlayLogID uint   `json:"play_log_id,omitempty"`
	PlayedAt  string `json:"played_at,omitempty"`
}

func recordEvent(tx *gorm.DB, eventType string, gameID, memberID *uint, payload EventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	event := db.Event{
		GameID:   gameID,
		MemberID: memberID,
		Type:     eventType,
		Payload:  datatypes.JSON(body),
	}
	return tx.Create(&event).Error
}

// RecentEvents returns the newest activity events, newest first.
func (s *Store) RecentEvents(limit int) ([]db.Event, error) {
	if limit < 1 {
		limit = 20
	}
	var events []db.Event
	err := s.db.Order("id DESC").Limit(limit).Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
