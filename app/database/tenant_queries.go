package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jaesumin02/Apartment-Billing-System/app/models"
)

const tenantSelect = `SELECT t.tenant_id, t.name, t.contact, t.unit_id, t.tenant_type,
	t.move_in, t.move_out, t.status,
	t.guardian_name, t.guardian_contact, t.guardian_relation, t.emergency_contact,
	t.advance_paid, t.deposit_paid, t.move_out_reason,
	COALESCE(u.unit_code, ''), COALESCE(u.unit_type, ''), COALESCE(u.price, 0)
	FROM tenants t
	LEFT JOIN units u ON t.unit_id = u.unit_id`

func scanTenant(row interface{ Scan(...interface{}) error }) (*models.Tenant, error) {
	t := &models.Tenant{}
	var unitID sql.NullInt64
	var moveOut sql.NullString
	err := row.Scan(
		&t.ID, &t.Name, &t.Contact, &unitID, &t.Type,
		&t.MoveIn, &moveOut, &t.Status,
		&t.GuardianName, &t.GuardianContact, &t.GuardianRelation, &t.EmergencyContact,
		&t.AdvancePaid, &t.DepositPaid, &t.MoveOutReason,
		&t.UnitCode, &t.UnitType, &t.RoomPrice,
	)
	if err != nil {
		return nil, err
	}
	if unitID.Valid {
		t.UnitID = &unitID.Int64
	}
	if moveOut.Valid {
		t.MoveOut = &moveOut.String
	}
	return t, nil
}

func collectTenants(rows *sql.Rows) ([]*models.Tenant, error) {
	var tenants []*models.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}

// GetTenants returns all tenants, optionally filtered by lifecycle status.
func GetTenants(db *sql.DB, status string) ([]*models.Tenant, error) {
	query := tenantSelect
	var args []interface{}
	if status == string(models.TenantActive) || status == string(models.TenantTerminated) {
		query += ` WHERE t.status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY t.tenant_id`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTenants(rows)
}

// SearchActiveTenants finds active tenants by name, contact, unit code or id.
func SearchActiveTenants(db *sql.DB, q string) ([]*models.Tenant, error) {
	like := "%" + q + "%"
	rows, err := db.Query(tenantSelect+`
		WHERE t.status = 'Active'
		  AND (t.name LIKE ? OR t.contact LIKE ? OR u.unit_code LIKE ? OR CAST(t.tenant_id AS TEXT) LIKE ?)
		ORDER BY t.tenant_id`, like, like, like, like)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTenants(rows)
}

// GetTenantByID returns one tenant or sql.ErrNoRows.
func GetTenantByID(db *sql.DB, tenantID int64) (*models.Tenant, error) {
	row := db.QueryRow(tenantSelect+` WHERE t.tenant_id = ?`, tenantID)
	return scanTenant(row)
}

// CreateTenant inserts a tenant row and returns its id. Callers go through
// the tenancy service, which enforces the dorm rules first.
func CreateTenant(db *sql.DB, t *models.Tenant) (int64, error) {
	var unitID interface{}
	if t.UnitID != nil {
		unitID = *t.UnitID
	}
	var moveOut interface{}
	if t.MoveOut != nil {
		moveOut = *t.MoveOut
	}

	res, err := db.Exec(`INSERT INTO tenants
		(name, contact, unit_id, tenant_type, move_in, move_out, status,
		 guardian_name, guardian_contact, guardian_relation, emergency_contact,
		 advance_paid, deposit_paid, move_out_reason)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		t.Name, t.Contact, unitID, string(t.Type), t.MoveIn, moveOut, string(t.Status),
		t.GuardianName, t.GuardianContact, t.GuardianRelation, t.EmergencyContact,
		t.AdvancePaid, t.DepositPaid, t.MoveOutReason)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateTenant applies a typed partial update to a tenant row. Lifecycle
// transitions go through TerminateTenant / RestoreTenant instead.
func UpdateTenant(db *sql.DB, tenantID int64, patch *models.TenantPatch) error {
	var sets []string
	var args []interface{}

	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Contact != nil {
		sets = append(sets, "contact = ?")
		args = append(args, *patch.Contact)
	}
	if patch.UnitID != nil {
		sets = append(sets, "unit_id = ?")
		args = append(args, *patch.UnitID)
	}
	if patch.Type != nil {
		sets = append(sets, "tenant_type = ?")
		args = append(args, string(*patch.Type))
	}
	if patch.MoveIn != nil {
		sets = append(sets, "move_in = ?")
		args = append(args, *patch.MoveIn)
	}
	if patch.GuardianName != nil {
		sets = append(sets, "guardian_name = ?")
		args = append(args, *patch.GuardianName)
	}
	if patch.GuardianContact != nil {
		sets = append(sets, "guardian_contact = ?")
		args = append(args, *patch.GuardianContact)
	}
	if patch.GuardianRelation != nil {
		sets = append(sets, "guardian_relation = ?")
		args = append(args, *patch.GuardianRelation)
	}
	if patch.EmergencyContact != nil {
		sets = append(sets, "emergency_contact = ?")
		args = append(args, *patch.EmergencyContact)
	}
	if patch.AdvancePaid != nil {
		sets = append(sets, "advance_paid = ?")
		args = append(args, *patch.AdvancePaid)
	}
	if patch.DepositPaid != nil {
		sets = append(sets, "deposit_paid = ?")
		args = append(args, *patch.DepositPaid)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, tenantID)
	query := fmt.Sprintf(`UPDATE tenants SET %s WHERE tenant_id = ?`, strings.Join(sets, ", "))
	res, err := db.Exec(query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// TerminateTenant flips a tenant to Terminated and records the move-out.
func TerminateTenant(db *sql.DB, tenantID int64, moveOutDate, reason string) error {
	_, err := db.Exec(
		`UPDATE tenants SET status = 'Terminated', move_out = ?, move_out_reason = ? WHERE tenant_id = ?`,
		moveOutDate, reason, tenantID)
	return err
}

// RestoreTenant flips a terminated tenant back to Active and clears the
// move-out fields.
func RestoreTenant(db *sql.DB, tenantID int64) error {
	_, err := db.Exec(
		`UPDATE tenants SET status = 'Active', move_out = NULL, move_out_reason = '' WHERE tenant_id = ?`,
		tenantID)
	return err
}
