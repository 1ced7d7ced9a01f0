package database

import (
	"database/sql"
	"time"

	"github.com/jaesumin02/Apartment-Billing-System/app/models"
)

// CreateMaintenanceRequest inserts a new request as Pending, dated today.
func CreateMaintenanceRequest(db *sql.DB, tenantID *int64, description string, priority models.Priority, fee float64, staff string) (int64, error) {
	var tid interface{}
	if tenantID != nil {
		tid = *tenantID
	}
	res, err := db.Exec(`INSERT INTO maintenance
		(tenant_id, description, priority, date_requested, status, fee, staff)
		VALUES (?,?,?,?,?,?,?)`,
		tid, description, string(priority), time.Now().Format("2006-01-02"),
		models.MaintenancePending, fee, staff)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetMaintenanceRequests returns non-deleted requests newest-first with the
// tenant name joined. Pass includeDeleted to see soft-deleted rows too.
func GetMaintenanceRequests(db *sql.DB, includeDeleted bool) ([]*models.MaintenanceRequest, error) {
	query := `SELECT m.request_id, m.tenant_id, m.description, m.priority,
		m.date_requested, m.status, COALESCE(m.fee, 0), COALESCE(m.staff, ''),
		m.date_completed, COALESCE(m.deleted, 0),
		COALESCE(t.name, '')
		FROM maintenance m
		LEFT JOIN tenants t ON m.tenant_id = t.tenant_id`
	if !includeDeleted {
		query += ` WHERE COALESCE(m.deleted, 0) = 0`
	}
	query += ` ORDER BY m.request_id DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.MaintenanceRequest
	for rows.Next() {
		m := &models.MaintenanceRequest{}
		var tenantID sql.NullInt64
		var completed sql.NullString
		var deleted int
		err := rows.Scan(
			&m.ID, &tenantID, &m.Description, &m.Priority,
			&m.DateRequested, &m.Status, &m.Fee, &m.Staff,
			&completed, &deleted, &m.TenantName,
		)
		if err != nil {
			return nil, err
		}
		if tenantID.Valid {
			m.TenantID = &tenantID.Int64
		}
		if completed.Valid {
			m.DateCompleted = &completed.String
		}
		m.Deleted = deleted != 0
		requests = append(requests, m)
	}
	return requests, rows.Err()
}

// UpdateMaintenanceStatus changes a request's status. Moving to Completed
// stamps the completion date; moving away clears it.
func UpdateMaintenanceStatus(db *sql.DB, requestID int64, status string) error {
	var completed interface{}
	if status == "Completed" {
		completed = time.Now().Format("2006-01-02")
	}
	res, err := db.Exec(
		`UPDATE maintenance SET status = ?, date_completed = ? WHERE request_id = ?`,
		status, completed, requestID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SoftDeleteMaintenanceRequest hides a request without removing the row.
func SoftDeleteMaintenanceRequest(db *sql.DB, requestID int64) error {
	res, err := db.Exec(`UPDATE maintenance SET deleted = 1 WHERE request_id = ?`, requestID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// RestoreMaintenanceRequest undoes a soft delete.
func RestoreMaintenanceRequest(db *sql.DB, requestID int64) error {
	res, err := db.Exec(`UPDATE maintenance SET deleted = 0 WHERE request_id = ?`, requestID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// MaintenanceCounts returns (total, pending) over non-deleted requests for
// the dashboard cards.
func MaintenanceCounts(db *sql.DB) (total, pending int, err error) {
	err = db.QueryRow(`SELECT COUNT(*) FROM maintenance WHERE COALESCE(deleted, 0) = 0`).Scan(&total)
	if err != nil {
		return 0, 0, err
	}
	err = db.QueryRow(
		`SELECT COUNT(*) FROM maintenance WHERE status = ? AND COALESCE(deleted, 0) = 0`,
		models.MaintenancePending).Scan(&pending)
	if err != nil {
		return 0, 0, err
	}
	return total, pending, nil
}

// SumMaintenanceFeesBetween totals fees for requests dated in [start, end).
func SumMaintenanceFeesBetween(db *sql.DB, start, end string) (float64, error) {
	var s sql.NullFloat64
	err := db.QueryRow(
		`SELECT SUM(fee) FROM maintenance WHERE date_requested >= ? AND date_requested < ?`,
		start, end).Scan(&s)
	if err != nil {
		return 0, err
	}
	if !s.Valid {
		return 0, nil
	}
	return s.Float64, nil
}
