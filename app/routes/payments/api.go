package payments

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jaesumin02/Apartment-Billing-System/app/database"
	"github.com/jaesumin02/Apartment-Billing-System/app/models"
	"github.com/jaesumin02/Apartment-Billing-System/app/services"
)

var validate = validator.New()

type paymentRequest struct {
	TenantID    int64   `json:"tenant_id" validate:"required"`
	Rent        float64 `json:"rent"`
	Electricity float64 `json:"electricity"`
	Water       float64 `json:"water"`
	Status      string  `json:"status" validate:"required,oneof=Paid Due Overdue Refund"`
	Note        string  `json:"note"`
}

// GetPaymentsAPI lists all payments newest-first.
func GetPaymentsAPI(c *fiber.Ctx, db *sql.DB) error {
	payments, err := database.GetPayments(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(fiber.Map{"success": true, "data": payments})
}

// GetPaymentByIDAPI returns one payment.
func GetPaymentByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payment id"})
	}

	payment, err := database.GetPaymentByID(db, int64(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payment"})
	}
	return c.JSON(fiber.Map{"success": true, "data": payment})
}

// CreatePaymentAPI records a manual payment or invoice.
func CreatePaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req paymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := services.CreatePayment(db, req.TenantID, req.Rent, req.Electricity, req.Water,
		models.PaymentStatus(req.Status), req.Note)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create payment"})
	}

	_ = database.LogActivity(db, "Payment Recorded",
		fmt.Sprintf("Payment #%d for tenant #%d (%s)", id, req.TenantID, req.Status))
	return c.Status(201).JSON(fiber.Map{"success": true, "payment_id": id})
}

// UpdatePaymentAPI rewrites a payment's amounts, status and note. The total
// and date_paid are recomputed server-side; they are never client-settable.
func UpdatePaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payment id"})
	}

	type updatePaymentRequest struct {
		Rent        float64 `json:"rent"`
		Electricity float64 `json:"electricity"`
		Water       float64 `json:"water"`
		Status      string  `json:"status" validate:"required,oneof=Paid Due Overdue Refund"`
		Note        string  `json:"note"`
	}
	var req updatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	err = services.UpdatePayment(db, int64(id), req.Rent, req.Electricity, req.Water,
		models.PaymentStatus(req.Status), req.Note)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update payment"})
	}

	_ = database.LogActivity(db, "Payment Updated", fmt.Sprintf("Payment #%d (%s)", id, req.Status))
	return c.JSON(fiber.Map{"success": true})
}

// GenerateAutoBillsAPI creates this month's Due invoices for every active
// tenant. Re-running it in the same month creates nothing new.
func GenerateAutoBillsAPI(c *fiber.Ctx, db *sql.DB) error {
	ref := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
		}
		ref = parsed
	}

	created, err := services.GenerateMonthlyInvoices(db, ref)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate invoices"})
	}

	_ = database.LogActivity(db, "Auto-Billing",
		fmt.Sprintf("Generated %d invoice(s) for %s", created, services.AutoBillNote(ref)))
	return c.JSON(fiber.Map{"success": true, "created": created})
}

// GetPaymentSummaryAPI returns collected payment totals and maintenance fees
// for one month, defaulting to the current one.
func GetPaymentSummaryAPI(c *fiber.Ctx, db *sql.DB) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "month must be 1-12"})
	}

	collected, err := services.TotalForPeriod(db, year, time.Month(month))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute totals"})
	}
	maintenanceFees, err := services.MaintenanceFeesForPeriod(db, year, time.Month(month))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute totals"})
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"year":             year,
		"month":            month,
		"collected":        collected,
		"maintenance_fees": maintenanceFees,
	})
}
