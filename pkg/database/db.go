package database

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	// Single connection keeps SQLite writes serialized and makes
	// :memory: databases usable in tests.
	db.SetMaxOpenConns(1)
	return db, nil
}
