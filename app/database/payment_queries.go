package database

import (
	"database/sql"

	"github.com/jaesumin02/Apartment-Billing-System/app/models"
)

const paymentSelect = `SELECT p.payment_id, p.tenant_id, p.rent, p.electricity, p.water,
	p.total, p.date_paid, p.status, COALESCE(p.note, ''),
	COALESCE(t.name, ''), COALESCE(t.tenant_type, '')
	FROM payments p
	LEFT JOIN tenants t ON p.tenant_id = t.tenant_id`

func scanPayment(row interface{ Scan(...interface{}) error }) (*models.Payment, error) {
	p := &models.Payment{}
	var datePaid sql.NullString
	err := row.Scan(
		&p.ID, &p.TenantID, &p.Rent, &p.Electricity, &p.Water,
		&p.Total, &datePaid, &p.Status, &p.Note,
		&p.TenantName, &p.TenantType,
	)
	if err != nil {
		return nil, err
	}
	if datePaid.Valid {
		p.DatePaid = &datePaid.String
	}
	return p, nil
}

// GetPayments returns all payments newest-first with tenant info joined.
func GetPayments(db *sql.DB) ([]*models.Payment, error) {
	rows, err := db.Query(paymentSelect + ` ORDER BY p.payment_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// GetPaymentByID returns one payment or sql.ErrNoRows.
func GetPaymentByID(db *sql.DB, paymentID int64) (*models.Payment, error) {
	row := db.QueryRow(paymentSelect+` WHERE p.payment_id = ?`, paymentID)
	return scanPayment(row)
}

// InsertPayment writes a fully-computed payment row and returns its id.
// The billing service is responsible for total and date_paid.
func InsertPayment(db *sql.DB, p *models.Payment) (int64, error) {
	var datePaid interface{}
	if p.DatePaid != nil {
		datePaid = *p.DatePaid
	}
	res, err := db.Exec(`INSERT INTO payments
		(tenant_id, rent, electricity, water, total, date_paid, status, note)
		VALUES (?,?,?,?,?,?,?,?)`,
		p.TenantID, p.Rent, p.Electricity, p.Water, p.Total, datePaid, string(p.Status), p.Note)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdatePaymentRow overwrites the mutable fields of a payment row.
func UpdatePaymentRow(db *sql.DB, p *models.Payment) error {
	var datePaid interface{}
	if p.DatePaid != nil {
		datePaid = *p.DatePaid
	}
	res, err := db.Exec(`UPDATE payments
		SET rent = ?, electricity = ?, water = ?, total = ?, date_paid = ?, status = ?, note = ?
		WHERE payment_id = ?`,
		p.Rent, p.Electricity, p.Water, p.Total, datePaid, string(p.Status), p.Note, p.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// InvoiceExistsWithNote reports whether a tenant already has a payment
// carrying the given note. An empty note never matches; the note is the
// idempotence key for auto-billing.
func InvoiceExistsWithNote(db *sql.DB, tenantID int64, note string) (bool, error) {
	if note == "" {
		return false, nil
	}
	var n int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM payments WHERE tenant_id = ? AND note = ?`, tenantID, note).Scan(&n)
	return n > 0, err
}

// SumPaymentsBetween totals paid payments with date_paid in [start, end).
// Unpaid rows (NULL date_paid) fall out of the range comparison.
func SumPaymentsBetween(db *sql.DB, start, end string) (float64, error) {
	var s sql.NullFloat64
	err := db.QueryRow(
		`SELECT SUM(total) FROM payments WHERE date_paid >= ? AND date_paid < ?`, start, end).Scan(&s)
	if err != nil {
		return 0, err
	}
	if !s.Valid {
		return 0, nil
	}
	return s.Float64, nil
}
