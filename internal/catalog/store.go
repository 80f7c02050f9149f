package catalog

import (
	"errors"
	"strings"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"
)

// Store wraps the database connection with the catalog operations. All
// multi-row writes (a game plus its ratings, a member plus their ratings)
// run inside a single transaction.
type Store struct {
	db *gorm.DB
}

func NewStore(conn *gorm.DB) *Store {
	return &Store{db: conn}
}

func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	if err == nil {
		return false
	}
	// sqlite and the pgx v5 error type both surface as plain error strings here.
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}
