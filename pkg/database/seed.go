package database

import (
	"database/sql"
	"fmt"

	"kuu/pkg/models"
)

// The fixed title catalog, levels 1-7. Read-only at runtime.
var defaultTitles = []models.KuuTitle{
	{Level: 1, Name: "くぅー見習い"},
	{Level: 2, Name: "くぅー初心者"},
	{Level: 3, Name: "くぅー愛好家"},
	{Level: 4, Name: "ほっこりくぅーさん"},
	{Level: 5, Name: "癒やしのくぅー使い"},
	{Level: 6, Name: "心のくぅーマスター"},
	{Level: 7, Name: "伝説のくぅー"},
}

// SeedTitles inserts the title catalog, skipping levels already present.
// Safe to run on every startup.
func SeedTitles(db *sql.DB) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO kuu_titles (level, name)
		VALUES (?, ?);
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert title: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, t := range defaultTitles {
		res, err := stmt.Exec(t.Level, t.Name)
		if err != nil {
			return 0, fmt.Errorf("insert title level %d: %w", t.Level, err)
		}
		aff, _ := res.RowsAffected()
		if aff > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return inserted, nil
}
