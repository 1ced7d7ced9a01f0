package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaesumin02/Apartment-Billing-System/app/models"
)

func TestRecomputeUnitStatusSolo(t *testing.T) {
	db := newTestDB(t)
	unitID := createUnit(t, db, "S01", models.UnitSolo, 4500, 1)

	assert.Equal(t, models.UnitVacant, unitStatus(t, db, unitID))

	_, err := CreateTenant(db, newTenant("Juan Dela Cruz", unitID, models.UnitSolo, 0))
	require.NoError(t, err)
	assert.Equal(t, models.UnitOccupied, unitStatus(t, db, unitID))
}

func TestRecomputeUnitStatusDorm(t *testing.T) {
	db := newTestDB(t)
	unitID := createUnit(t, db, "D01", models.UnitDorm, 8000, 3)

	// share = 8000/3, round up comfortably
	for i, name := range []string{"Ana Reyes", "Ben Reyes"} {
		_, err := CreateTenant(db, newTenant(name, unitID, models.UnitDorm, 3000))
		require.NoError(t, err, "tenant %d", i)
	}
	assert.Equal(t, models.UnitOccupied, unitStatus(t, db, unitID))

	_, err := CreateTenant(db, newTenant("Carla Reyes", unitID, models.UnitDorm, 3000))
	require.NoError(t, err)
	assert.Equal(t, models.UnitFull, unitStatus(t, db, unitID))
}

func TestDormCapacityClampedToSix(t *testing.T) {
	db := newTestDB(t)
	// Stored capacity 10 is clamped to the dorm ceiling of 6.
	unitID := createUnit(t, db, "D02", models.UnitDorm, 6000, 10)

	names := []string{"T One", "T Two", "T Three", "T Four", "T Five", "T Six"}
	for _, name := range names {
		_, err := CreateTenant(db, newTenant(name, unitID, models.UnitDorm, 2000))
		require.NoError(t, err)
	}
	assert.Equal(t, models.UnitFull, unitStatus(t, db, unitID))
}

func TestRecomputeUnknownUnit(t *testing.T) {
	db := newTestDB(t)
	err := RecomputeUnitStatus(db, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
