// Package sound stores per-user recorded kuu clips. Content is kept as a
// base64 column in the database; there is no filesystem fallback.
package sound

import (
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxFileSize caps uploads at 10 MiB.
const MaxFileSize = 10 << 20

// Not-found and not-owned are deliberately the same error so delete
// responses never reveal whether a clip exists.
var ErrNotFound = errors.New("sound not found") // 404

type Sound struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserName  string    `json:"userName"`
	Duration  *float64  `json:"duration"`
	FileData  string    `json:"fileData,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListFilter struct {
	WithFileData bool
	OwnerID      string // restrict to this uploader when non-empty
	Limit        int    // <= 0 means unlimited
	Offset       int
}

func Create(db *sql.DB, userID, name string, data []byte) (Sound, error) {
	s := Sound{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	_, err := db.Exec(`INSERT INTO kuu_sounds(id, user_id, name, file_data, duration, is_active, created_at) VALUES(?,?,?,?,NULL,1,?)`,
		s.ID, userID, name, encoded, s.CreatedAt)
	if err != nil {
		return Sound{}, fmt.Errorf("insert sound: %w", err)
	}
	if err := db.QueryRow(`SELECT name FROM users WHERE id = ?`, userID).Scan(&s.UserName); err != nil {
		return Sound{}, fmt.Errorf("lookup uploader: %w", err)
	}
	return s, nil
}

// List returns active clips, newest first. The payload column is only
// selected when the filter asks for it, to keep listing responses small.
func List(db *sql.DB, f ListFilter) ([]Sound, error) {
	cols := `s.id, s.name, s.duration, s.created_at, u.name`
	if f.WithFileData {
		cols += `, s.file_data`
	}
	q := `SELECT ` + cols + `
		FROM kuu_sounds s JOIN users u ON u.id = s.user_id
		WHERE s.is_active = 1`
	args := []any{}

	if f.OwnerID != "" {
		q += ` AND s.user_id = ?`
		args = append(args, f.OwnerID)
	}
	q += ` ORDER BY s.created_at DESC LIMIT ? OFFSET ?`
	limit := f.Limit
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	args = append(args, limit, f.Offset)

	rows, err := db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query sounds: %w", err)
	}
	defer rows.Close()

	res := []Sound{}
	for rows.Next() {
		var (
			s   Sound
			dur sql.NullFloat64
		)
		dest := []any{&s.ID, &s.Name, &dur, &s.CreatedAt, &s.UserName}
		if f.WithFileData {
			dest = append(dest, &s.FileData)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan sound: %w", err)
		}
		if dur.Valid {
			s.Duration = &dur.Float64
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

// Get returns full metadata plus the payload. Any authenticated user may
// fetch any clip; reads are intentionally not ownership-scoped.
func Get(db *sql.DB, id string) (Sound, error) {
	var (
		s   Sound
		dur sql.NullFloat64
	)
	err := db.QueryRow(`
		SELECT s.id, s.name, s.duration, s.created_at, u.name, s.file_data
		FROM kuu_sounds s JOIN users u ON u.id = s.user_id
		WHERE s.id = ?`, id).
		Scan(&s.ID, &s.Name, &dur, &s.CreatedAt, &s.UserName, &s.FileData)
	if errors.Is(err, sql.ErrNoRows) {
		return Sound{}, ErrNotFound
	}
	if err != nil {
		return Sound{}, fmt.Errorf("lookup sound: %w", err)
	}
	if dur.Valid {
		s.Duration = &dur.Float64
	}
	return s, nil
}

// Delete removes a clip the requester owns. A clip that does not exist and
// a clip owned by someone else both report ErrNotFound.
func Delete(db *sql.DB, requesterID, id string) error {
	res, err := db.Exec(`DELETE FROM kuu_sounds WHERE id = ? AND user_id = ?`, id, requesterID)
	if err != nil {
		return fmt.Errorf("delete sound: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete sound: %w", err)
	}
	if aff == 0 {
		return ErrNotFound
	}
	return nil
}
