package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"foodhub-support/internal/order/repository"
	"foodhub-support/pkg/log"
)

type implRepository struct {
	db      *sql.DB
	l       log.Logger
	timeout time.Duration
}

// New creates a new sqlite-backed Repository for the order domain.
func New(db *sql.DB, l log.Logger, queryTimeout time.Duration) repository.Repository {
	if db == nil {
		panic("order/repository/sqlite: db is required")
	}
	if queryTimeout <= 0 {
		queryTimeout = 3 * time.Second
	}
	return &implRepository{db: db, l: l, timeout: queryTimeout}
}

// Open opens the sqlite database at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("order/repository/sqlite: open %s: %w", path, err)
	}
	return db, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("order/repository/sqlite.%s", method)
}
