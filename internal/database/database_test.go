package database

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations(t *testing.T) {
	db, err := Open(Config{Path: filepath.Join(t.TempDir(), "flightnet.db")})
	require.NoError(t, err)
	defer db.Close()

	m := NewMigrationManager(db)
	require.NoError(t, m.RunMigrations())
	require.NoError(t, m.RunMigrations(), "second run is a no-op")

	applied, err := m.GetAppliedMigrations()
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 2: true}, applied)

	for _, table := range []string{"airports", "coupons"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, table)
	}
}

func TestLoadMigrations_Sorted(t *testing.T) {
	db, err := Open(Config{Path: filepath.Join(t.TempDir(), "flightnet.db")})
	require.NoError(t, err)
	defer db.Close()

	migrations, err := NewMigrationManager(db).LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, "001_airports", migrations[0].Name)
	assert.Equal(t, 2, migrations[1].Version)
}

func TestTransaction_RollsBack(t *testing.T) {
	db, err := Open(Config{Path: filepath.Join(t.TempDir(), "flightnet.db")})
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, NewMigrationManager(db).RunMigrations())

	err = Transaction(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO coupons (code, airline, discount_amount, expiry_date) VALUES ('X', 'Pegasus', 10, '2026-12-31')`); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM coupons").Scan(&n))
	assert.Equal(t, 0, n)
}
