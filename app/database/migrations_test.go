package database

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaesumin02/Apartment-Billing-System/app/config"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := config.OpenDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, RunMigrations(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	// A second run sees an up-to-date schema and applies nothing.
	require.NoError(t, RunMigrations(db))

	var version int
	require.NoError(t, db.QueryRow(`SELECT MAX(version) FROM schema_migrations`).Scan(&version))
	assert.Equal(t, migrations[len(migrations)-1].version, version)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&count))
	assert.Equal(t, len(migrations), count)
}

func TestMigrationsProduceFullSchema(t *testing.T) {
	db := newTestDB(t)

	// Columns added by later migrations must be writable.
	_, err := db.Exec(`INSERT INTO tenants
		(name, contact, tenant_type, move_in, status, guardian_name, guardian_contact,
		 guardian_relation, emergency_contact, advance_paid, deposit_paid, move_out_reason)
		VALUES ('A B', '0', 'Solo', '2025-01-01', 'Active', 'C D', '0', 'Mother', '', 100, 100, '')`)
	assert.NoError(t, err)

	_, err = db.Exec(`INSERT INTO maintenance
		(description, priority, date_requested, status, fee, staff, deleted)
		VALUES ('leak', 'High', '2025-01-01', 'Pending', 50, 'Rey', 0)`)
	assert.NoError(t, err)
}

func TestSeedDefaults(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, SeedDefaults(db))

	var units, solo, family, dorm int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM units`).Scan(&units))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM units WHERE unit_type='Solo'`).Scan(&solo))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM units WHERE unit_type='Family'`).Scan(&family))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM units WHERE unit_type='Dorm'`).Scan(&dorm))
	assert.Equal(t, 50, units)
	assert.Equal(t, 20, solo)
	assert.Equal(t, 25, family)
	assert.Equal(t, 5, dorm)

	var price, capacity sql.NullFloat64
	require.NoError(t, db.QueryRow(
		`SELECT price, capacity FROM units WHERE unit_code='D01'`).Scan(&price, &capacity))
	assert.Equal(t, 8000.0, price.Float64)
	assert.Equal(t, 6.0, capacity.Float64)

	var userCount int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&userCount))
	assert.Equal(t, 1, userCount)

	// Re-seeding a populated database changes nothing.
	require.NoError(t, SeedDefaults(db))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM units`).Scan(&units))
	assert.Equal(t, 50, units)
}
