package staff

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

// GetStaffAPI lists staff, optionally filtered by ?status=Active|Archived.
func GetStaffAPI(c *fiber.Ctx, db *sql.DB) error {
	staff, err := database.GetStaff(db, c.Query("status"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch staff"})
	}
	return c.JSON(fiber.Map{"success": true, "data": staff})
}

// GetActiveStaffNamesAPI returns active staff names for assignment dropdowns.
func GetActiveStaffNamesAPI(c *fiber.Ctx, db *sql.DB) error {
	names, err := database.GetActiveStaffNames(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch staff names"})
	}
	return c.JSON(fiber.Map{"success": true, "data": names})
}

// CreateStaffAPI adds a staff member.
func CreateStaffAPI(c *fiber.Ctx, db *sql.DB) error {
	type CreateStaffRequest struct {
		Name    string `json:"name" validate:"required"`
		Contact string `json:"contact"`
		Role    string `json:"role" validate:"required"`
	}

	var req CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := database.CreateStaff(db, req.Name, req.Contact, req.Role)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create staff"})
	}

	_ = database.LogActivity(db, "Staff Added", fmt.Sprintf("Staff #%d %s (%s)", id, req.Name, req.Role))
	return c.Status(201).JSON(fiber.Map{"success": true, "staff_id": id})
}

// UpdateStaffAPI applies a partial edit to a staff member.
func UpdateStaffAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid staff id"})
	}

	var patch models.StaffPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := database.UpdateStaff(db, int64(id), &patch); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Staff not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update staff"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// ArchiveStaffAPI soft-deletes a staff member.
func ArchiveStaffAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid staff id"})
	}

	if err := database.ArchiveStaff(db, int64(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Staff not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to archive staff"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// RestoreStaffAPI returns an archived staff member to Active.
func RestoreStaffAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid staff id"})
	}

	if err := database.RestoreStaff(db, int64(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Staff not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to restore staff"})
	}
	return c.JSON(fiber.Map{"success": true})
}
