package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jask/fintrack/internal/apperrors"
)

// Open opens sqlite with sensible defaults. Failures are storage errors.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return db, nil
}
