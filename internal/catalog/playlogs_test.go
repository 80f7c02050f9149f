package catalog

import (
	"errors"
	"fmt"
	"testing"
)

func TestRecordPlayValidation(t *testing.T) {
	store := newTestStore(t)
	game := createGame(t, store, "Catan")

	if _, err := store.RecordPlay(999, PlayLogInput{
		PlayedAt:        "2024-06-01",
		DurationMinutes: 60,
	}); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}

	if _, err := store.RecordPlay(game.ID, PlayLogInput{
		PlayedAt:        "last tuesday",
		DurationMinutes: 60,
	}); !errors.Is(err, ErrInvalidTimestamp) {
		t.Fatalf("expected ErrInvalidTimestamp, got %v", err)
	}

	if _, err := store.RecordPlay(game.ID, PlayLogInput{
		PlayedAt:        "2024-06-01",
		DurationMinutes: 0,
	}); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}

	entry, err := store.RecordPlay(game.ID, PlayLogInput{
		PlayedAt:        "2024-06-01T19:30",
		Players:         "Alice, Bob",
		Winner:          "Alice",
		DurationMinutes: 75,
	})
	if err != nil {
		t.Fatalf("expected record to succeed, got %v", err)
	}
	if entry.ID == 0 || entry.Winner != "Alice" {
		t.Fatalf("expected persisted entry, got %#v", entry)
	}
}

func TestParsePlayedAtLayouts(t *testing.T) {
	for _, raw := range []string{
		"2024-06-01",
		"2024-06-01T19:30",
		"2024-06-01T19:30:45",
		"2024-06-01T19:30:45Z",
	} {
		if _, err := ParsePlayedAt(raw); err != nil {
			t.Fatalf("expected %q to parse, got %v", raw, err)
		}
	}
	for _, raw := range []string{"", "yesterday", "06/01/2024"} {
		if _, err := ParsePlayedAt(raw); !errors.Is(err, ErrInvalidTimestamp) {
			t.Fatalf("expected %q to fail with ErrInvalidTimestamp, got %v", raw, err)
		}
	}
}

func TestUpdatePlayLog(t *testing.T) {
	store := newTestStore(t)
	game := createGame(t, store, "Catan")
	entry, err := store.RecordPlay(game.ID, PlayLogInput{
		PlayedAt:        "2024-06-01",
		DurationMinutes: 60,
	})
	if err != nil {
		t.Fatalf("expected record to succeed, got %v", err)
	}

	updated, err := store.UpdatePlayLog(entry.ID, PlayLogInput{
		PlayedAt:        "2024-06-02",
		Winner:          "Bob",
		DurationMinutes: 90,
	})
	if err != nil {
		t.Fatalf("expected update to succeed, got %v", err)
	}
	if updated.Winner != "Bob" || updated.DurationMinutes != 90 {
		t.Fatalf("expected fields updated, got %#v", updated)
	}

	if _, err := store.UpdatePlayLog(999, PlayLogInput{
		PlayedAt:        "2024-06-02",
		DurationMinutes: 30,
	}); !errors.Is(err, ErrPlayLogNotFound) {
		t.Fatalf("expected ErrPlayLogNotFound, got %v", err)
	}
}

func TestDeletePlayLog(t *testing.T) {
	store := newTestStore(t)
	game := createGame(t, store, "Catan")
	entry, err := store.RecordPlay(game.ID, PlayLogInput{
		PlayedAt:        "2024-06-01",
		DurationMinutes: 60,
	})
	if err != nil {
		t.Fatalf("expected record to succeed, got %v", err)
	}

	if err := store.DeletePlayLog(entry.ID); err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}
	if err := store.DeletePlayLog(entry.ID); !errors.Is(err, ErrPlayLogNotFound) {
		t.Fatalf("expected ErrPlayLogNotFound on second delete, got %v", err)
	}
}

func TestLastPlayed(t *testing.T) {
	store := newTestStore(t)
	game := createGame(t, store, "Catan")

	if _, ok, err := store.LastPlayed(game.ID); err != nil || ok {
		t.Fatalf("expected no last played, got ok=%v err=%v", ok, err)
	}

	for _, day := range []string{"2024-01-01", "2024-06-01"} {
		if _, err := store.RecordPlay(game.ID, PlayLogInput{PlayedAt: day, DurationMinutes: 30}); err != nil {
			t.Fatalf("expected record to succeed, got %v", err)
		}
	}

	at, ok, err := store.LastPlayed(game.ID)
	if err != nil || !ok {
		t.Fatalf("expected last played, got ok=%v err=%v", ok, err)
	}
	if at.Format("2006-01-02") != "2024-06-01" {
		t.Fatalf("expected 2024-06-01, got %s", at.Format("2006-01-02"))
	}
}

func TestListPlayLogsPagination(t *testing.T) {
	store := newTestStore(t)
	game := createGame(t, store, "Catan")
	for day := 1; day <= 5; day++ {
		if _, err := store.RecordPlay(game.ID, PlayLogInput{
			PlayedAt:        fmt.Sprintf("2024-06-%02d", day),
			DurationMinutes: 30,
		}); err != nil {
			t.Fatalf("expected record to succeed, got %v", err)
		}
	}

	entries, total, err := store.ListPlayLogs(1, 2)
	if err != nil {
		t.Fatalf("expected list to succeed, got %v", err)
	}
	if total != 5 || len(entries) != 2 {
		t.Fatalf("expected total 5 and page of 2, got total=%d len=%d", total, len(entries))
	}
	if entries[0].PlayedAt.Before(entries[1].PlayedAt) {
		t.Fatal("expected played_at descending order")
	}
	if entries[0].GameTitle != "Catan" {
		t.Fatalf("expected joined game title, got %q", entries[0].GameTitle)
	}
	if entries[0].PlayedAt.Format("2006-01-02") != "2024-06-05" {
		t.Fatalf("expected newest first, got %s", entries[0].PlayedAt.Format("2006-01-02"))
	}

	entries, total, err = store.ListPlayLogs(9, 2)
	if err != nil {
		t.Fatalf("expected out-of-range page to succeed, got %v", err)
	}
	if total != 5 || len(entries) != 0 {
		t.Fatalf("expected empty page with total 5, got total=%d len=%d", total, len(entries))
	}
}
