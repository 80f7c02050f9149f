package catalog

import (
	"fmt"
	"testing"

	"gamedex/internal/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("expected sqlite open to succeed, got %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("expected migration to succeed, got %v", err)
	}
	return NewStore(conn)
}

func createGame(t *testing.T, store *Store, title string) *db.Game {
	t.Helper()
	game, err := store.CreateGame(GameInput{Title: title}, nil)
	if err != nil {
		t.Fatalf("expected game create to succeed, got %v", err)
	}
	return game
}

func createMember(t *testing.T, store *Store, name string) *db.FamilyMember {
	t.Helper()
	member, err := store.CreateMember(name)
	if err != nil {
		t.Fatalf("expected member create to succeed, got %v", err)
	}
	return member
}

func countRatings(t *testing.T, store *Store, gameID uint) int {
	t.Helper()
	ratings, err := store.RatingsByMember(gameID)
	if err != nil {
		t.Fatalf("expected ratings load to succeed, got %v", err)
	}
	return len(ratings)
}
