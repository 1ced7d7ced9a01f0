package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaesumin02/Apartment-Billing-System/app/models"
)

func TestUpdateTenantPatch(t *testing.T) {
	db := newTestDB(t)

	unitID, err := CreateUnit(db, "S01", models.UnitSolo, 4500, 1)
	require.NoError(t, err)

	tenantID, err := CreateTenant(db, &models.Tenant{
		Name:            "Juan Dela Cruz",
		Contact:         "09170000000",
		UnitID:          &unitID,
		Type:            models.UnitSolo,
		MoveIn:          "2025-01-01",
		Status:          models.TenantActive,
		GuardianName:    "Maria Dela Cruz",
		GuardianContact: "09171234567",
	})
	require.NoError(t, err)

	// Only the patched fields change.
	newContact := "09998887777"
	newAdvance := 2500.0
	err = UpdateTenant(db, tenantID, &models.TenantPatch{
		Contact:     &newContact,
		AdvancePaid: &newAdvance,
	})
	require.NoError(t, err)

	tenant, err := GetTenantByID(db, tenantID)
	require.NoError(t, err)
	assert.Equal(t, "Juan Dela Cruz", tenant.Name)
	assert.Equal(t, newContact, tenant.Contact)
	assert.Equal(t, newAdvance, tenant.AdvancePaid)
	assert.Equal(t, models.TenantActive, tenant.Status)

	// An empty patch is a no-op, not an error.
	assert.NoError(t, UpdateTenant(db, tenantID, &models.TenantPatch{}))

	// Patching a missing tenant reports sql.ErrNoRows.
	err = UpdateTenant(db, 9999, &models.TenantPatch{Contact: &newContact})
	assert.Error(t, err)
}

func TestSearchActiveTenants(t *testing.T) {
	db := newTestDB(t)

	unitID, err := CreateUnit(db, "F07", models.UnitFamily, 9000, 1)
	require.NoError(t, err)

	mk := func(name, contact string, unit *int64, status models.TenantStatus) int64 {
		id, err := CreateTenant(db, &models.Tenant{
			Name: name, Contact: contact, UnitID: unit,
			Type: models.UnitFamily, MoveIn: "2025-01-01", Status: status,
		})
		require.NoError(t, err)
		return id
	}

	mk("Juan Dela Cruz", "09171110000", &unitID, models.TenantActive)
	mk("Pedro Santos", "09172220000", nil, models.TenantActive)
	mk("Gone Person", "09173330000", nil, models.TenantTerminated)

	byName, err := SearchActiveTenants(db, "Dela")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Juan Dela Cruz", byName[0].Name)

	byUnitCode, err := SearchActiveTenants(db, "F07")
	require.NoError(t, err)
	require.Len(t, byUnitCode, 1)

	// Terminated tenants never match.
	gone, err := SearchActiveTenants(db, "Gone")
	require.NoError(t, err)
	assert.Empty(t, gone)
}

func TestInvoiceExistsWithNote(t *testing.T) {
	db := newTestDB(t)

	tenantID, err := CreateTenant(db, &models.Tenant{
		Name: "Juan Dela Cruz", Type: models.UnitSolo,
		MoveIn: "2025-01-01", Status: models.TenantActive,
	})
	require.NoError(t, err)

	exists, err := InvoiceExistsWithNote(db, tenantID, "Auto-bill November 2025")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = InsertPayment(db, &models.Payment{
		TenantID: tenantID, Rent: 4500, Total: 4500,
		Status: models.PaymentDue, Note: "Auto-bill November 2025",
	})
	require.NoError(t, err)

	exists, err = InvoiceExistsWithNote(db, tenantID, "Auto-bill November 2025")
	require.NoError(t, err)
	assert.True(t, exists)

	// The empty note is never treated as a duplicate key.
	exists, err = InvoiceExistsWithNote(db, tenantID, "")
	require.NoError(t, err)
	assert.False(t, exists)
}
