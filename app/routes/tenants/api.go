package tenants

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

// domainError maps tenancy service errors onto HTTP responses.
func domainError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(400).JSON(fiber.Map{"error": verr.Error(), "field": verr.Field})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrCapacityExceeded),
		errors.Is(err, services.ErrInsufficientAdvance):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Internal error"})
	}
}

// GetTenantsAPI lists tenants. ?status=Active|Terminated filters by
// lifecycle; ?q= searches active tenants by name, contact, unit code or id.
func GetTenantsAPI(c *fiber.Ctx, db *sql.DB) error {
	if q := c.Query("q"); q != "" {
		tenants, err := database.SearchActiveTenants(db, q)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to search tenants"})
		}
		return c.JSON(fiber.Map{"success": true, "data": tenants})
	}

	tenants, err := database.GetTenants(db, c.Query("status"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tenants"})
	}
	return c.JSON(fiber.Map{"success": true, "data": tenants})
}

// GetTenantByIDAPI returns one tenant.
func GetTenantByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid tenant id"})
	}

	tenant, err := database.GetTenantByID(db, int64(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Tenant not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tenant"})
	}
	return c.JSON(fiber.Map{"success": true, "data": tenant})
}

// CreateTenantAPI registers a new tenant. Field checks mirror the original
// intake form; the dorm capacity and advance rules are enforced again inside
// the tenancy service regardless.
func CreateTenantAPI(c *fiber.Ctx, db *sql.DB) error {
	type CreateTenantRequest struct {
		Name             string  `json:"name" validate:"required"`
		Contact          string  `json:"contact"`
		UnitID           *int64  `json:"unit_id"`
		Type             string  `json:"tenant_type" validate:"required,oneof=Solo Family Dorm"`
		MoveIn           string  `json:"move_in"`
		GuardianName     string  `json:"guardian_name" validate:"required"`
		GuardianContact  string  `json:"guardian_contact" validate:"required,numeric"`
		GuardianRelation string  `json:"guardian_relation"`
		EmergencyContact string  `json:"emergency_contact"`
		AdvancePaid      float64 `json:"advance_paid" validate:"gte=0"`
		DepositPaid      float64 `json:"deposit_paid" validate:"gte=0"`
	}

	var req CreateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := services.ValidateTenantFields(req.Name, req.GuardianName, req.GuardianContact); err != nil {
		return domainError(c, err)
	}

	moveIn := req.MoveIn
	if moveIn == "" {
		moveIn = time.Now().Format("2006-01-02")
	}

	tenant := &models.Tenant{
		Name:             req.Name,
		Contact:          req.Contact,
		UnitID:           req.UnitID,
		Type:             models.UnitType(req.Type),
		MoveIn:           moveIn,
		GuardianName:     req.GuardianName,
		GuardianContact:  req.GuardianContact,
		GuardianRelation: req.GuardianRelation,
		EmergencyContact: req.EmergencyContact,
		AdvancePaid:      req.AdvancePaid,
		DepositPaid:      req.DepositPaid,
	}

	id, err := services.CreateTenant(db, tenant)
	if err != nil {
		return domainError(c, err)
	}

	_ = database.LogActivity(db, "Tenant Created", fmt.Sprintf("Tenant #%d %s", id, req.Name))
	return c.Status(201).JSON(fiber.Map{"success": true, "tenant_id": id})
}

// UpdateTenantAPI applies a partial edit or a unit transfer.
func UpdateTenantAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid tenant id"})
	}

	var patch models.TenantPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if patch.Type != nil {
		switch *patch.Type {
		case models.UnitSolo, models.UnitFamily, models.UnitDorm:
		default:
			return c.Status(400).JSON(fiber.Map{"error": "tenant_type must be Solo, Family or Dorm"})
		}
	}
	if patch.AdvancePaid != nil && *patch.AdvancePaid < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "advance_paid must not be negative"})
	}
	if patch.DepositPaid != nil && *patch.DepositPaid < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "deposit_paid must not be negative"})
	}

	if err := services.TransferOrEdit(db, int64(id), &patch); err != nil {
		return domainError(c, err)
	}

	_ = database.LogActivity(db, "Tenant Updated", fmt.Sprintf("Tenant #%d", id))
	return c.JSON(fiber.Map{"success": true})
}

// TerminateTenantAPI soft-deletes a tenant with a move-out date and reason.
// A second terminate on the same tenant is informational, not an error.
func TerminateTenantAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid tenant id"})
	}

	type TerminateRequest struct {
		MoveOutDate string `json:"move_out_date"`
		Reason      string `json:"reason"`
	}
	var req TerminateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.MoveOutDate == "" {
		req.MoveOutDate = time.Now().Format("2006-01-02")
	}

	err = services.Terminate(db, int64(id), req.MoveOutDate, req.Reason)
	if errors.Is(err, services.ErrAlreadyTerminated) {
		return c.JSON(fiber.Map{"success": true, "message": "Tenant is already terminated"})
	}
	if err != nil {
		return domainError(c, err)
	}

	_ = database.LogActivity(db, "Tenant Terminated", fmt.Sprintf("Tenant #%d (%s)", id, req.Reason))
	return c.JSON(fiber.Map{"success": true})
}

// RestoreTenantAPI returns a terminated tenant to Active.
func RestoreTenantAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid tenant id"})
	}

	if err := services.Restore(db, int64(id)); err != nil {
		return domainError(c, err)
	}

	_ = database.LogActivity(db, "Tenant Restored", fmt.Sprintf("Tenant #%d", id))
	return c.JSON(fiber.Map{"success": true})
}
