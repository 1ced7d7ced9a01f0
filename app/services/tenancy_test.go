package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaesumin02/Apartment-Billing-System/app/database"
	"github.com/jaesumin02/Apartment-Billing-System/app/models"
)

func TestValidateTenantFields(t *testing.T) {
	assert.NoError(t, ValidateTenantFields("Juan Dela Cruz", "Maria Dela Cruz", "09171234567"))

	var verr *ValidationError

	err := ValidateTenantFields("Juan", "Maria Dela Cruz", "09171234567")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	err = ValidateTenantFields("Juan Dela Cruz", "Maria", "09171234567")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "guardian_name", verr.Field)

	err = ValidateTenantFields("Juan Dela Cruz", "Maria Dela Cruz", "0917-123")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "guardian_contact", verr.Field)

	err = ValidateTenantFields("Juan Dela Cruz", "Maria Dela Cruz", "")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "guardian_contact", verr.Field)
}

func TestDormCapacityRule(t *testing.T) {
	db := newTestDB(t)
	unitID := createUnit(t, db, "D01", models.UnitDorm, 8000, 6)

	// share = 8000/6 = 1333.33; 1334 clears it.
	for i := 1; i <= 6; i++ {
		_, err := CreateTenant(db, newTenant(fmt.Sprintf("Tenant Number%d", i), unitID, models.UnitDorm, 1334))
		require.NoError(t, err, "tenant %d should fit", i)
	}
	assert.Equal(t, models.UnitFull, unitStatus(t, db, unitID))

	_, err := CreateTenant(db, newTenant("Tenant Number7", unitID, models.UnitDorm, 1334))
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	// The rejected create left nothing behind.
	n, err := database.CountActiveTenantsInUnit(db, unitID)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestDormAdvanceRule(t *testing.T) {
	db := newTestDB(t)
	unitID := createUnit(t, db, "D02", models.UnitDorm, 8000, 6)

	_, err := CreateTenant(db, newTenant("Short Payer", unitID, models.UnitDorm, 1000))
	assert.ErrorIs(t, err, ErrInsufficientAdvance)

	_, err = CreateTenant(db, newTenant("Fair Payer", unitID, models.UnitDorm, 1334))
	assert.NoError(t, err)
}

func TestAdvanceRuleOnlyAppliesToDormUnits(t *testing.T) {
	db := newTestDB(t)
	unitID := createUnit(t, db, "F01", models.UnitFamily, 9000, 1)

	_, err := CreateTenant(db, newTenant("Zero Advance", unitID, models.UnitFamily, 0))
	assert.NoError(t, err)
}

func TestTerminateAndRestoreRoundTrip(t *testing.T) {
	db := newTestDB(t)
	unitID := createUnit(t, db, "S05", models.UnitSolo, 4500, 1)
	tenantID, err := CreateTenant(db, newTenant("Juan Dela Cruz", unitID, models.UnitSolo, 0))
	require.NoError(t, err)
	require.Equal(t, models.UnitOccupied, unitStatus(t, db, unitID))

	require.NoError(t, Terminate(db, tenantID, "2025-06-30", "Found cheaper accommodation"))

	terminated, err := database.GetTenantByID(db, tenantID)
	require.NoError(t, err)
	assert.Equal(t, models.TenantTerminated, terminated.Status)
	require.NotNil(t, terminated.MoveOut)
	assert.Equal(t, "2025-06-30", *terminated.MoveOut)
	assert.Equal(t, "Found cheaper accommodation", terminated.MoveOutReason)
	assert.Equal(t, models.UnitVacant, unitStatus(t, db, unitID))

	// Terminating again is reported, not repeated.
	err = Terminate(db, tenantID, "2025-07-01", "again")
	assert.ErrorIs(t, err, ErrAlreadyTerminated)

	require.NoError(t, Restore(db, tenantID))

	restored, err := database.GetTenantByID(db, tenantID)
	require.NoError(t, err)
	assert.Equal(t, models.TenantActive, restored.Status)
	assert.Nil(t, restored.MoveOut)
	assert.Empty(t, restored.MoveOutReason)
	assert.Equal(t, models.UnitOccupied, unitStatus(t, db, unitID))
}

func TestRestoreUnknownTenant(t *testing.T) {
	db := newTestDB(t)
	assert.ErrorIs(t, Restore(db, 777), ErrNotFound)
}

func TestTerminateUnknownTenant(t *testing.T) {
	db := newTestDB(t)
	assert.ErrorIs(t, Terminate(db, 777, "2025-01-01", "x"), ErrNotFound)
}

func TestTransferRecomputesBothUnits(t *testing.T) {
	db := newTestDB(t)
	oldUnit := createUnit(t, db, "S01", models.UnitSolo, 4500, 1)
	newUnit := createUnit(t, db, "S02", models.UnitSolo, 4500, 1)

	tenantID, err := CreateTenant(db, newTenant("Juan Dela Cruz", oldUnit, models.UnitSolo, 0))
	require.NoError(t, err)
	require.Equal(t, models.UnitOccupied, unitStatus(t, db, oldUnit))

	require.NoError(t, TransferOrEdit(db, tenantID, &models.TenantPatch{UnitID: &newUnit}))

	assert.Equal(t, models.UnitVacant, unitStatus(t, db, oldUnit))
	assert.Equal(t, models.UnitOccupied, unitStatus(t, db, newUnit))
}

func TestTransferIntoFullDormRejected(t *testing.T) {
	db := newTestDB(t)
	dorm := createUnit(t, db, "D01", models.UnitDorm, 6000, 2)
	solo := createUnit(t, db, "S01", models.UnitSolo, 4500, 1)

	// share = 6000/2 = 3000
	for _, name := range []string{"Dorm One", "Dorm Two"} {
		_, err := CreateTenant(db, newTenant(name, dorm, models.UnitDorm, 3000))
		require.NoError(t, err)
	}

	tenantID, err := CreateTenant(db, newTenant("Juan Dela Cruz", solo, models.UnitSolo, 5000))
	require.NoError(t, err)

	err = TransferOrEdit(db, tenantID, &models.TenantPatch{UnitID: &dorm})
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	// Failed transfer leaves the tenant where they were.
	tenant, err := database.GetTenantByID(db, tenantID)
	require.NoError(t, err)
	require.NotNil(t, tenant.UnitID)
	assert.Equal(t, solo, *tenant.UnitID)
}

func TestEditWithinSameDormIgnoresOwnOccupancy(t *testing.T) {
	db := newTestDB(t)
	dorm := createUnit(t, db, "D03", models.UnitDorm, 6000, 2)

	// share = 3000; fill the dorm.
	firstID, err := CreateTenant(db, newTenant("First Tenant", dorm, models.UnitDorm, 3000))
	require.NoError(t, err)
	_, err = CreateTenant(db, newTenant("Second Tenant", dorm, models.UnitDorm, 3000))
	require.NoError(t, err)
	require.Equal(t, models.UnitFull, unitStatus(t, db, dorm))

	// Re-submitting the same unit on an edit must not trip the capacity rule.
	newName := "First Tenant Renamed"
	err = TransferOrEdit(db, firstID, &models.TenantPatch{Name: &newName, UnitID: &dorm})
	assert.NoError(t, err)

	tenant, err := database.GetTenantByID(db, firstID)
	require.NoError(t, err)
	assert.Equal(t, newName, tenant.Name)
}

func TestTransferEnforcesAdvanceAgainstNewUnit(t *testing.T) {
	db := newTestDB(t)
	dorm := createUnit(t, db, "D04", models.UnitDorm, 8000, 6)
	solo := createUnit(t, db, "S09", models.UnitSolo, 4500, 1)

	tenantID, err := CreateTenant(db, newTenant("Juan Dela Cruz", solo, models.UnitSolo, 1000))
	require.NoError(t, err)

	// 1000 is under the 1333.33 dorm share.
	err = TransferOrEdit(db, tenantID, &models.TenantPatch{UnitID: &dorm})
	assert.ErrorIs(t, err, ErrInsufficientAdvance)

	// Raising the advance in the same patch clears the rule.
	advance := 1334.0
	err = TransferOrEdit(db, tenantID, &models.TenantPatch{UnitID: &dorm, AdvancePaid: &advance})
	assert.NoError(t, err)
}
