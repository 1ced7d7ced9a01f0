package database

import (
	"database/sql"
	"time"

	"github.com/jaesumin02/Apartment-Billing-System/app/models"
)

// LogActivity appends a timestamped action to the activity log. Failures are
// returned but callers generally only log them; the log never blocks the
// operation it describes.
func LogActivity(db *sql.DB, action, details string) error {
	_, err := db.Exec(
		`INSERT INTO activity_log (timestamp, action, details) VALUES (?,?,?)`,
		time.Now().Format("2006-01-02 15:04:05"), action, details)
	return err
}

// GetActivityLog returns log entries newest-first.
func GetActivityLog(db *sql.DB) ([]*models.ActivityLog, error) {
	rows, err := db.Query(`SELECT log_id, timestamp, action, details FROM activity_log ORDER BY log_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.ActivityLog
	for rows.Next() {
		e := &models.ActivityLog{}
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Action, &e.Details); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ClearActivityLog removes all log entries.
func ClearActivityLog(db *sql.DB) error {
	_, err := db.Exec(`DELETE FROM activity_log`)
	return err
}
