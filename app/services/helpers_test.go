package services

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jaesumin02/Apartment-Billing-System/app/config"
	"github.com/jaesumin02/Apartment-Billing-System/app/database"
	"github.com/jaesumin02/Apartment-Billing-System/app/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := config.OpenDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func createUnit(t *testing.T, db *sql.DB, code string, unitType models.UnitType, price float64, capacity int) int64 {
	t.Helper()
	id, err := database.CreateUnit(db, code, unitType, price, capacity)
	require.NoError(t, err)
	return id
}

func newTenant(name string, unitID int64, tenantType models.UnitType, advance float64) *models.Tenant {
	return &models.Tenant{
		Name:             name,
		Contact:          "09170000000",
		UnitID:           &unitID,
		Type:             tenantType,
		MoveIn:           "2025-01-01",
		GuardianName:     "Maria Dela Cruz",
		GuardianContact:  "09171234567",
		GuardianRelation: "Mother",
		AdvancePaid:      advance,
		DepositPaid:      advance,
	}
}

func unitStatus(t *testing.T, db *sql.DB, unitID int64) models.UnitStatus {
	t.Helper()
	unit, err := database.GetUnitByID(db, unitID)
	require.NoError(t, err)
	return unit.Status
}
