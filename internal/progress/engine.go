// Package progress implements the kuu counter and leveling rules.
package progress

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// A level-up needs count >= level * LevelThreshold, so each level takes
// ten more clicks than the one before it.
const LevelThreshold = 10

var ErrNoStatus = errors.New("no kuu status") // 404: user never counted up

type Snapshot struct {
	KuuCount   int       `json:"kuuCount"`
	Level      int       `json:"level"`
	Title      string    `json:"title"`
	TitleLevel int       `json:"titleLevel"`
	UpdatedAt  time.Time `json:"updatedAt"`
	// true when this increment crossed a level boundary; not part of
	// the HTTP response, only the event feed cares.
	LeveledUp bool `json:"-"`
}

// Increment adds one to the user's count and recomputes level and title,
// all inside a single transaction so concurrent count-ups for the same
// user never lose an update. The first count-up creates the row with
// count=1, level=1 and the level-1 title.
func Increment(db *sql.DB, userID string) (Snapshot, error) {
	tx, err := db.Begin()
	if err != nil {
		return Snapshot{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()

	var (
		id      string
		count   int
		level   int
		titleID int64
	)
	err = tx.QueryRow(`SELECT id, kuu_count, level, title_id FROM kuu_status WHERE user_id = ?`, userID).
		Scan(&id, &count, &level, &titleID)
	if errors.Is(err, sql.ErrNoRows) {
		// First kuu. The level-1 title is seeded at startup, so this
		// lookup failing is a real server error.
		var firstTitleID int64
		if err := tx.QueryRow(`SELECT id FROM kuu_titles WHERE level = 1`).Scan(&firstTitleID); err != nil {
			return Snapshot{}, fmt.Errorf("lookup level-1 title: %w", err)
		}
		id = uuid.NewString()
		_, err = tx.Exec(`INSERT INTO kuu_status(id, user_id, kuu_count, level, title_id, updated_at) VALUES(?,?,?,?,?,?)`,
			id, userID, 1, 1, firstTitleID, now)
		if err != nil {
			return Snapshot{}, fmt.Errorf("insert kuu status: %w", err)
		}
		return finishTx(tx, 1, 1, firstTitleID, now, false)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("lookup kuu status: %w", err)
	}

	newCount := count + 1
	newLevel := level
	newTitleID := titleID
	if newCount >= level*LevelThreshold {
		newLevel = level + 1
		var tid int64
		err := tx.QueryRow(`SELECT id FROM kuu_titles WHERE level = ?`, newLevel).Scan(&tid)
		switch {
		case err == nil:
			newTitleID = tid
		case errors.Is(err, sql.ErrNoRows):
			// Catalog exhausted; keep the old title.
		default:
			return Snapshot{}, fmt.Errorf("lookup title for level %d: %w", newLevel, err)
		}
	}

	_, err = tx.Exec(`UPDATE kuu_status SET kuu_count = ?, level = ?, title_id = ?, updated_at = ? WHERE id = ?`,
		newCount, newLevel, newTitleID, now, id)
	if err != nil {
		return Snapshot{}, fmt.Errorf("update kuu status: %w", err)
	}
	return finishTx(tx, newCount, newLevel, newTitleID, now, newLevel > level)
}

func finishTx(tx *sql.Tx, count, level int, titleID int64, updatedAt time.Time, leveledUp bool) (Snapshot, error) {
	var (
		titleName  string
		titleLevel int
	)
	if err := tx.QueryRow(`SELECT name, level FROM kuu_titles WHERE id = ?`, titleID).Scan(&titleName, &titleLevel); err != nil {
		return Snapshot{}, fmt.Errorf("lookup title: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Snapshot{}, fmt.Errorf("commit tx: %w", err)
	}
	return Snapshot{
		KuuCount:   count,
		Level:      level,
		Title:      titleName,
		TitleLevel: titleLevel,
		UpdatedAt:  updatedAt,
		LeveledUp:  leveledUp,
	}, nil
}

// Status returns the current snapshot without mutating anything.
func Status(db *sql.DB, userID string) (Snapshot, error) {
	var s Snapshot
	err := db.QueryRow(`
		SELECT s.kuu_count, s.level, t.name, t.level, s.updated_at
		FROM kuu_status s JOIN kuu_titles t ON t.id = s.title_id
		WHERE s.user_id = ?`, userID).
		Scan(&s.KuuCount, &s.Level, &s.Title, &s.TitleLevel, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, ErrNoStatus
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("lookup kuu status: %w", err)
	}
	return s, nil
}
