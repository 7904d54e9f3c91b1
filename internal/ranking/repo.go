package ranking

import (
	"database/sql"
	"fmt"
)

type Row struct {
	Rank       int    `json:"rank"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	KuuCount   int    `json:"kuuCount"`
	Level      int    `json:"level"`
	Title      string `json:"title"`
	TitleLevel int    `json:"titleLevel"`
}

type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalCount  int `json:"totalCount"`
	Limit       int `json:"limit"`
}

// List returns one page of the leaderboard, highest count first. Rank is
// positional (offset + index + 1), not recomputed across ties; user_id is
// the secondary sort key so pages are stable across requests.
func List(db *sql.DB, page, limit int) ([]Row, Pagination, error) {
	offset := (page - 1) * limit

	var totalCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM kuu_status`).Scan(&totalCount); err != nil {
		return nil, Pagination{}, fmt.Errorf("count kuu status: %w", err)
	}

	rows, err := db.Query(`
		SELECT s.user_id, u.name, s.kuu_count, s.level, t.name, t.level
		FROM kuu_status s
		JOIN users u ON u.id = s.user_id
		JOIN kuu_titles t ON t.id = s.title_id
		ORDER BY s.kuu_count DESC, s.user_id ASC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("query ranking: %w", err)
	}
	defer rows.Close()

	res := []Row{}
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.UserID, &r.UserName, &r.KuuCount, &r.Level, &r.Title, &r.TitleLevel); err != nil {
			return nil, Pagination{}, fmt.Errorf("scan ranking row: %w", err)
		}
		r.Rank = offset + len(res) + 1
		res = append(res, r)
	}
	if err := rows.Err(); err != nil {
		return nil, Pagination{}, fmt.Errorf("ranking rows: %w", err)
	}

	p := Pagination{
		CurrentPage: page,
		TotalPages:  (totalCount + limit - 1) / limit,
		TotalCount:  totalCount,
		Limit:       limit,
	}
	return res, p, nil
}
