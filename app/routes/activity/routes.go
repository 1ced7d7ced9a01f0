package activity

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/jaesumin02/Apartment-Billing-System/app/database"
	"github.com/jaesumin02/Apartment-Billing-System/app/routes/auth"
)

// SetupActivityRoutes registers the activity log endpoints.
func SetupActivityRoutes(app *fiber.App, db *sql.DB, jwtSecret string) {
	api := app.Group("/api/activity")
	api.Use(auth.Middleware(jwtSecret))

	api.Get("/", func(c *fiber.Ctx) error {
		entries, err := database.GetActivityLog(db)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch activity log"})
		}
		return c.JSON(fiber.Map{"success": true, "data": entries})
	})

	api.Post("/clear", func(c *fiber.Ctx) error {
		if err := database.ClearActivityLog(db); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to clear activity log"})
		}
		return c.JSON(fiber.Map{"success": true})
	})
}
