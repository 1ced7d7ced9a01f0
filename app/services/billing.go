package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jaesumin02/Apartment-Billing-System/app/database"
	"github.com/jaesumin02/Apartment-Billing-System/app/models"
)

// AutoBillNote builds the idempotence key for one billing month, e.g.
// "Auto-bill November 2025". One note per tenant per month, ever.
func AutoBillNote(ref time.Time) string {
	return fmt.Sprintf("Auto-bill %s %d", ref.Month().String(), ref.Year())
}

// CreatePayment prices and inserts a payment record. Total is the sum of the
// three components; date_paid is stamped today only when the status is Paid.
func CreatePayment(db *sql.DB, tenantID int64, rent, electricity, water float64, status models.PaymentStatus, note string) (int64, error) {
	p := &models.Payment{
		TenantID:    tenantID,
		Rent:        rent,
		Electricity: electricity,
		Water:       water,
		Total:       rent + electricity + water,
		Status:      status,
		Note:        note,
	}
	if status == models.PaymentPaid {
		today := time.Now().Format("2006-01-02")
		p.DatePaid = &today
	}
	return database.InsertPayment(db, p)
}

// UpdatePayment rewrites a payment's components, recomputing total and
// date_paid exactly as CreatePayment does.
func UpdatePayment(db *sql.DB, paymentID int64, rent, electricity, water float64, status models.PaymentStatus, note string) error {
	p := &models.Payment{
		ID:          paymentID,
		Rent:        rent,
		Electricity: electricity,
		Water:       water,
		Total:       rent + electricity + water,
		Status:      status,
		Note:        note,
	}
	if status == models.PaymentPaid {
		today := time.Now().Format("2006-01-02")
		p.DatePaid = &today
	}

	err := database.UpdatePaymentRow(db, p)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("payment %d: %w", paymentID, ErrNotFound)
	}
	return err
}

// GenerateMonthlyInvoices creates one Due invoice per active tenant for the
// month of ref, skipping tenants already billed for that month. Rent comes
// from the tenant's unit; utilities come from the tenant's own category.
// Returns how many invoices were created. Safe to re-run.
func GenerateMonthlyInvoices(db *sql.DB, ref time.Time) (int, error) {
	note := AutoBillNote(ref)

	tenants, err := database.GetTenants(db, string(models.TenantActive))
	if err != nil {
		return 0, err
	}

	created := 0
	for _, t := range tenants {
		exists, err := database.InvoiceExistsWithNote(db, t.ID, note)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		rent := t.RoomPrice
		if t.UnitID == nil {
			rent = 0
		}
		electricity, water := UtilityRates(string(t.Type))

		p := &models.Payment{
			TenantID:    t.ID,
			Rent:        rent,
			Electricity: electricity,
			Water:       water,
			Total:       rent + electricity + water,
			Status:      models.PaymentDue,
			Note:        note,
		}
		if _, err := database.InsertPayment(db, p); err != nil {
			return created, err
		}
		created++
	}

	if created > 0 {
		log.Printf("Auto-billing generated %d invoice(s) for %s", created, note)
	}
	return created, nil
}

// TotalForPeriod sums paid payments whose date_paid falls inside the given
// month. Due invoices have no date_paid and are excluded.
func TotalForPeriod(db *sql.DB, year int, month time.Month) (float64, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return database.SumPaymentsBetween(db, start.Format("2006-01-02"), end.Format("2006-01-02"))
}

// MaintenanceFeesForPeriod sums maintenance fees requested inside the given
// month, for the reports view.
func MaintenanceFeesForPeriod(db *sql.DB, year int, month time.Month) (float64, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return database.SumMaintenanceFeesBetween(db, start.Format("2006-01-02"), end.Format("2006-01-02"))
}
