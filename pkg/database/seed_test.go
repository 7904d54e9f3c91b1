package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedTitles(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Migrate(db))

	n, err := SeedTitles(db)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	// Idempotent on restart.
	n, err = SeedTitles(db)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM kuu_titles WHERE level = 1`).Scan(&name))
	assert.Equal(t, "くぅー見習い", name)
	require.NoError(t, db.QueryRow(`SELECT name FROM kuu_titles WHERE level = 7`).Scan(&name))
	assert.Equal(t, "伝説のくぅー", name)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM kuu_titles`).Scan(&count))
	assert.Equal(t, 7, count)
}

func TestMigrateIdempotent(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}
