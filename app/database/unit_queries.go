package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jaesumin02/Apartment-Billing-System/app/models"
)

const unitColumns = `u.unit_id, u.unit_code, u.unit_type, u.price, u.status, u.capacity`

func scanUnit(row interface{ Scan(...interface{}) error }) (*models.Unit, error) {
	u := &models.Unit{}
	var capacity sql.NullInt64
	err := row.Scan(&u.ID, &u.Code, &u.Type, &u.Price, &u.Status, &capacity)
	if err != nil {
		return nil, err
	}
	if capacity.Valid {
		u.Capacity = int(capacity.Int64)
	}
	return u, nil
}

// GetUnits returns all units, optionally filtered by occupancy status,
// with the live active-tenant count joined in.
func GetUnits(db *sql.DB, status string) ([]*models.Unit, error) {
	query := `SELECT ` + unitColumns + `,
			  (SELECT COUNT(*) FROM tenants t WHERE t.unit_id = u.unit_id AND t.status = 'Active') AS tenant_count
			  FROM units u`

	var args []interface{}
	if status == string(models.UnitVacant) || status == string(models.UnitOccupied) || status == string(models.UnitFull) {
		query += ` WHERE u.status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY u.unit_type, u.unit_code`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []*models.Unit
	for rows.Next() {
		u := &models.Unit{}
		var capacity sql.NullInt64
		if err := rows.Scan(&u.ID, &u.Code, &u.Type, &u.Price, &u.Status, &capacity, &u.TenantCount); err != nil {
			return nil, err
		}
		if capacity.Valid {
			u.Capacity = int(capacity.Int64)
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

// GetUnitsByType returns units of one type ordered by code.
func GetUnitsByType(db *sql.DB, unitType string) ([]*models.Unit, error) {
	rows, err := db.Query(`SELECT `+unitColumns+` FROM units u WHERE u.unit_type = ? ORDER BY u.unit_code`, unitType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUnits(rows)
}

// GetAvailableUnitsByType returns vacant units of one type, used when
// assigning a tenant to a unit.
func GetAvailableUnitsByType(db *sql.DB, unitType string) ([]*models.Unit, error) {
	rows, err := db.Query(
		`SELECT `+unitColumns+` FROM units u WHERE u.unit_type = ? AND u.status = 'Vacant' ORDER BY u.unit_code`,
		unitType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUnits(rows)
}

func collectUnits(rows *sql.Rows) ([]*models.Unit, error) {
	var units []*models.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

// GetUnitByID returns one unit or sql.ErrNoRows.
func GetUnitByID(db *sql.DB, unitID int64) (*models.Unit, error) {
	row := db.QueryRow(`SELECT `+unitColumns+` FROM units u WHERE u.unit_id = ?`, unitID)
	return scanUnit(row)
}

// UpdateUnitStatus persists a derived occupancy status. Only the occupancy
// recomputation should call this.
func UpdateUnitStatus(db *sql.DB, unitID int64, status models.UnitStatus) error {
	_, err := db.Exec(`UPDATE units SET status = ? WHERE unit_id = ?`, string(status), unitID)
	return err
}

// UpdateUnit applies a typed partial update to a unit row.
func UpdateUnit(db *sql.DB, unitID int64, patch *models.UnitPatch) error {
	var sets []string
	var args []interface{}

	if patch.Code != nil {
		sets = append(sets, "unit_code = ?")
		args = append(args, *patch.Code)
	}
	if patch.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *patch.Price)
	}
	if patch.Capacity != nil {
		sets = append(sets, "capacity = ?")
		args = append(args, *patch.Capacity)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, unitID)
	query := fmt.Sprintf(`UPDATE units SET %s WHERE unit_id = ?`, strings.Join(sets, ", "))
	res, err := db.Exec(query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CreateUnit inserts a new unit, starting Vacant.
func CreateUnit(db *sql.DB, code string, unitType models.UnitType, price float64, capacity int) (int64, error) {
	res, err := db.Exec(
		`INSERT INTO units (unit_code, unit_type, price, status, capacity) VALUES (?,?,?,?,?)`,
		code, string(unitType), price, string(models.UnitVacant), capacity)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// CountActiveTenantsInUnit returns how many active tenants occupy a unit.
func CountActiveTenantsInUnit(db *sql.DB, unitID int64) (int, error) {
	var n int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM tenants WHERE unit_id = ? AND status = 'Active'`, unitID).Scan(&n)
	return n, err
}
