package database

import (
	"database/sql"
	"time"

	"github.com/jaesumin02/Apartment-Billing-System/app/models"
)

// DashboardStats holds the aggregates shown on the dashboard.
type DashboardStats struct {
	TotalUnits          int     `json:"total_units"`
	VacantUnits         int     `json:"vacant_units"`
	OccupiedUnits       int     `json:"occupied_units"`
	FullUnits           int     `json:"full_units"`
	ActiveTenants       int     `json:"active_tenants"`
	TerminatedTenants   int     `json:"terminated_tenants"`
	CollectedThisMonth  float64 `json:"collected_this_month"`
	DuePayments         int     `json:"due_payments"`
	MaintenanceTotal    int     `json:"maintenance_total"`
	MaintenancePending  int     `json:"maintenance_pending"`
	MaintenanceFeeMonth float64 `json:"maintenance_fee_month"`
}

// GetDashboardStats recomputes every dashboard aggregate from the store.
// Nothing is cached between calls; each refresh re-queries.
func GetDashboardStats(db *sql.DB) (*DashboardStats, error) {
	stats := &DashboardStats{}

	err := db.QueryRow(`SELECT COUNT(*) FROM units`).Scan(&stats.TotalUnits)
	if err != nil {
		return nil, err
	}
	err = db.QueryRow(`SELECT COUNT(*) FROM units WHERE status = ?`, string(models.UnitVacant)).Scan(&stats.VacantUnits)
	if err != nil {
		return nil, err
	}
	err = db.QueryRow(`SELECT COUNT(*) FROM units WHERE status = ?`, string(models.UnitOccupied)).Scan(&stats.OccupiedUnits)
	if err != nil {
		return nil, err
	}
	err = db.QueryRow(`SELECT COUNT(*) FROM units WHERE status = ?`, string(models.UnitFull)).Scan(&stats.FullUnits)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM tenants WHERE status = ?`, string(models.TenantActive)).Scan(&stats.ActiveTenants)
	if err != nil {
		return nil, err
	}
	err = db.QueryRow(`SELECT COUNT(*) FROM tenants WHERE status = ?`, string(models.TenantTerminated)).Scan(&stats.TerminatedTenants)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM payments WHERE status = ?`, string(models.PaymentDue)).Scan(&stats.DuePayments)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	stats.CollectedThisMonth, err = SumPaymentsBetween(db, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	stats.MaintenanceFeeMonth, err = SumMaintenanceFeesBetween(db, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	stats.MaintenanceTotal, stats.MaintenancePending, err = MaintenanceCounts(db)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
