package units

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/jaesumin02/Apartment-Billing-System/app/routes/auth"
)

// SetupUnitsRoutes registers the unit endpoints.
func SetupUnitsRoutes(app *fiber.App, db *sql.DB, jwtSecret string) {
	api := app.Group("/api/units")
	api.Use(auth.Middleware(jwtSecret))

	api.Get("/", func(c *fiber.Ctx) error {
		return GetUnitsAPI(c, db)
	})
	api.Get("/available", func(c *fiber.Ctx) error {
		return GetAvailableUnitsAPI(c, db)
	})
	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetUnitByIDAPI(c, db)
	})
	api.Post("/", func(c *fiber.Ctx) error {
		return CreateUnitAPI(c, db)
	})
	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateUnitAPI(c, db)
	})
}
