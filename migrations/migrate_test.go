package migrations

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_SQLiteUpCreatesSchema(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db, "sqlite3"))

	// both tables exist and the unique constraints hold
	_, err = db.Exec(`INSERT INTO users (name, email, password_hash, created_at) VALUES ('a', 'a@b.c', 'h', 1)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO users (name, email, password_hash, created_at) VALUES ('b', 'a@b.c', 'h', 2)`)
	assert.Error(t, err, "duplicate email must violate UNIQUE")

	_, err = db.Exec(`INSERT INTO posts (title, body, url, created_at) VALUES ('t', 'b', 'slug', 1)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO posts (title, body, url, created_at) VALUES ('t2', 'b2', 'slug', 2)`)
	assert.Error(t, err, "duplicate slug must violate UNIQUE")
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db, "sqlite3"))
	require.NoError(t, Migrate(db, "sqlite3"))
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	assert.Error(t, Migrate(db, "oracle"))
}
