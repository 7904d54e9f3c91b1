package ranking

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuu/pkg/database"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	_, err = database.SeedTitles(db)
	require.NoError(t, err)
	return db
}

// seedStatuses inserts n users where user i has count i (user n leads).
func seedStatuses(t *testing.T, db *sql.DB, n int) {
	t.Helper()
	var titleID int64
	require.NoError(t, db.QueryRow(`SELECT id FROM kuu_titles WHERE level = 1`).Scan(&titleID))
	for i := 1; i <= n; i++ {
		uid := fmt.Sprintf("user-%03d", i)
		_, err := db.Exec(`INSERT INTO users(id, name, email, password_hash) VALUES(?,?,?,?)`,
			uid, fmt.Sprintf("User %d", i), fmt.Sprintf("u%d@x.com", i), "hash")
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO kuu_status(id, user_id, kuu_count, level, title_id) VALUES(?,?,?,?,?)`,
			fmt.Sprintf("status-%03d", i), uid, i, 1, titleID)
		require.NoError(t, err)
	}
}

func TestListOrderingAndRanks(t *testing.T) {
	db := testDB(t)
	seedStatuses(t, db, 25)

	rows, p, err := List(db, 1, 10)
	require.NoError(t, err)
	require.Len(t, rows, 10)

	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, 25, rows[0].KuuCount)
	assert.Equal(t, "User 25", rows[0].UserName)
	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i].KuuCount, rows[i-1].KuuCount)
		assert.Equal(t, i+1, rows[i].Rank)
	}

	assert.Equal(t, Pagination{CurrentPage: 1, TotalPages: 3, TotalCount: 25, Limit: 10}, p)
}

func TestListSecondPage(t *testing.T) {
	db := testDB(t)
	seedStatuses(t, db, 25)

	rows, p, err := List(db, 2, 10)
	require.NoError(t, err)
	require.Len(t, rows, 10)
	assert.Equal(t, 11, rows[0].Rank)
	assert.Equal(t, 15, rows[0].KuuCount)
	assert.Equal(t, 2, p.CurrentPage)
}

func TestListPastEnd(t *testing.T) {
	db := testDB(t)
	seedStatuses(t, db, 5)

	rows, p, err := List(db, 4, 10)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotNil(t, rows, "rankings must encode as [] not null")
	assert.Equal(t, 5, p.TotalCount)
	assert.Equal(t, 1, p.TotalPages)
}

func TestListTiebreakDeterministic(t *testing.T) {
	db := testDB(t)
	seedStatuses(t, db, 3)
	// Force a three-way tie.
	_, err := db.Exec(`UPDATE kuu_status SET kuu_count = 7`)
	require.NoError(t, err)

	rows, _, err := List(db, 1, 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "user-001", rows[0].UserID)
	assert.Equal(t, "user-002", rows[1].UserID)
	assert.Equal(t, "user-003", rows[2].UserID)
}
