package units

import (
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jaesumin02/Apartment-Billing-System/app/database"
	"github.com/jaesumin02/Apartment-Billing-System/app/models"
	"github.com/jaesumin02/Apartment-Billing-System/app/services"
)

var validate = validator.New()

// GetUnitsAPI returns all units, optionally filtered by ?status= or ?type=.
func GetUnitsAPI(c *fiber.Ctx, db *sql.DB) error {
	if unitType := c.Query("type"); unitType != "" {
		units, err := database.GetUnitsByType(db, unitType)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch units"})
		}
		return c.JSON(fiber.Map{"success": true, "data": units})
	}

	units, err := database.GetUnits(db, c.Query("status"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch units"})
	}
	return c.JSON(fiber.Map{"success": true, "data": units})
}

// GetAvailableUnitsAPI returns vacant units of the requested type, for
// assigning a tenant.
func GetAvailableUnitsAPI(c *fiber.Ctx, db *sql.DB) error {
	unitType := c.Query("type")
	if unitType == "" {
		return c.Status(400).JSON(fiber.Map{"error": "type query parameter is required"})
	}
	units, err := database.GetAvailableUnitsByType(db, unitType)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch available units"})
	}
	return c.JSON(fiber.Map{"success": true, "data": units})
}

// GetUnitByIDAPI returns one unit.
func GetUnitByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid unit id"})
	}

	unit, err := database.GetUnitByID(db, int64(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Unit not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch unit"})
	}
	return c.JSON(fiber.Map{"success": true, "data": unit})
}

// CreateUnitAPI adds a unit beyond the seeded inventory.
func CreateUnitAPI(c *fiber.Ctx, db *sql.DB) error {
	type CreateUnitRequest struct {
		Code     string  `json:"unit_code" validate:"required"`
		Type     string  `json:"unit_type" validate:"required,oneof=Solo Family Dorm"`
		Price    float64 `json:"price" validate:"gte=0"`
		Capacity int     `json:"capacity" validate:"gte=0"`
	}

	var req CreateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	capacity := req.Capacity
	if capacity == 0 {
		capacity = 1
		if req.Type == string(models.UnitDorm) {
			capacity = models.DormDefaultCapacity
		}
	}

	id, err := database.CreateUnit(db, req.Code, models.UnitType(req.Type), req.Price, capacity)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create unit"})
	}

	_ = database.LogActivity(db, "Unit Created", "Unit "+req.Code)
	return c.Status(201).JSON(fiber.Map{"success": true, "unit_id": id})
}

// UpdateUnitAPI edits a unit's code, price or capacity. The occupancy status
// is re-derived afterwards because a capacity change can flip a dorm between
// Occupied and Full.
func UpdateUnitAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid unit id"})
	}

	var patch models.UnitPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if patch.Price != nil && *patch.Price < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "price must not be negative"})
	}
	if patch.Capacity != nil && *patch.Capacity < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "capacity must not be negative"})
	}

	if err := database.UpdateUnit(db, int64(id), &patch); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Unit not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update unit"})
	}

	if err := services.RecomputeUnitStatus(db, int64(id)); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to recompute unit status"})
	}

	return c.JSON(fiber.Map{"success": true})
}
