package maintenance

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jaesumin02/Apartment-Billing-System/app/database"
	"github.com/jaesumin02/Apartment-Billing-System/app/models"
)

var validate = validator.New()

// GetMaintenanceAPI lists maintenance requests. ?deleted=true includes
// soft-deleted rows.
func GetMaintenanceAPI(c *fiber.Ctx, db *sql.DB) error {
	includeDeleted := c.Query("deleted") == "true"
	requests, err := database.GetMaintenanceRequests(db, includeDeleted)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch maintenance requests"})
	}
	return c.JSON(fiber.Map{"success": true, "data": requests})
}

// GetMaintenanceStatsAPI returns the (total, pending) counts for dashboards.
func GetMaintenanceStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	total, pending, err := database.MaintenanceCounts(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch maintenance stats"})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"total":   total,
		"pending": pending,
	})
}

// CreateMaintenanceAPI files a new request, starting Pending and dated today.
func CreateMaintenanceAPI(c *fiber.Ctx, db *sql.DB) error {
	type CreateMaintenanceRequest struct {
		TenantID    *int64  `json:"tenant_id"`
		Description string  `json:"description" validate:"required"`
		Priority    string  `json:"priority" validate:"required,oneof=Low Medium High"`
		Fee         float64 `json:"fee" validate:"gte=0"`
		Staff       string  `json:"staff"`
	}

	var req CreateMaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := database.CreateMaintenanceRequest(db, req.TenantID, req.Description,
		models.Priority(req.Priority), req.Fee, req.Staff)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create maintenance request"})
	}

	_ = database.LogActivity(db, "Maintenance Filed", fmt.Sprintf("Request #%d (%s)", id, req.Priority))
	return c.Status(201).JSON(fiber.Map{"success": true, "request_id": id})
}

// UpdateMaintenanceStatusAPI changes a request's status.
func UpdateMaintenanceStatusAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request id"})
	}

	type StatusRequest struct {
		Status string `json:"status" validate:"required"`
	}
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateMaintenanceStatus(db, int64(id), req.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Maintenance request not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update status"})
	}

	_ = database.LogActivity(db, "Maintenance Updated", fmt.Sprintf("Request #%d -> %s", id, req.Status))
	return c.JSON(fiber.Map{"success": true})
}

// DeleteMaintenanceAPI soft-deletes a request.
func DeleteMaintenanceAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request id"})
	}

	if err := database.SoftDeleteMaintenanceRequest(db, int64(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Maintenance request not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete request"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// RestoreMaintenanceAPI undoes a soft delete.
func RestoreMaintenanceAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request id"})
	}

	if err := database.RestoreMaintenanceRequest(db, int64(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Maintenance request not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to restore request"})
	}
	return c.JSON(fiber.Map{"success": true})
}
