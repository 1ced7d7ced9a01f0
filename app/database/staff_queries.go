package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jaesumin02/Apartment-Billing-System/app/models"
)

// GetStaff returns staff rows, optionally filtered by status, ordered by name.
func GetStaff(db *sql.DB, status string) ([]*models.Staff, error) {
	query := `SELECT staff_id, name, contact, role, COALESCE(status, 'Active') FROM staff`
	var args []interface{}
	if status == string(models.StaffActive) || status == string(models.StaffArchived) {
		query += ` WHERE COALESCE(status, 'Active') = ?`
		args = append(args, status)
	}
	query += ` ORDER BY name`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []*models.Staff
	for rows.Next() {
		s := &models.Staff{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Contact, &s.Role, &s.Status); err != nil {
			return nil, err
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

// GetActiveStaffNames returns the names of active staff, for maintenance
// assignment dropdowns.
func GetActiveStaffNames(db *sql.DB) ([]string, error) {
	staff, err := GetStaff(db, string(models.StaffActive))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(staff))
	for _, s := range staff {
		names = append(names, s.Name)
	}
	return names, nil
}

// CreateStaff inserts a staff member as Active.
func CreateStaff(db *sql.DB, name, contact, role string) (int64, error) {
	res, err := db.Exec(
		`INSERT INTO staff (name, contact, role, status) VALUES (?,?,?,?)`,
		name, contact, role, string(models.StaffActive))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateStaff applies a typed partial update to a staff row.
func UpdateStaff(db *sql.DB, staffID int64, patch *models.StaffPatch) error {
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
	if patch.Role != nil {
		sets = append(sets, "role = ?")
		args = append(args, *patch.Role)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, staffID)
	query := fmt.Sprintf(`UPDATE staff SET %s WHERE staff_id = ?`, strings.Join(sets, ", "))
	res, err := db.Exec(query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ArchiveStaff soft-deletes a staff member.
func ArchiveStaff(db *sql.DB, staffID int64) error {
	return setStaffStatus(db, staffID, models.StaffArchived)
}

// RestoreStaff returns an archived staff member to Active.
func RestoreStaff(db *sql.DB, staffID int64) error {
	return setStaffStatus(db, staffID, models.StaffActive)
}

func setStaffStatus(db *sql.DB, staffID int64, status models.StaffStatus) error {
	res, err := db.Exec(`UPDATE staff SET status = ? WHERE staff_id = ?`, string(status), staffID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
