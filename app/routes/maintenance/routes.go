package maintenance

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/jaesumin02/Apartment-Billing-System/app/routes/auth"
)

// SetupMaintenanceRoutes registers the maintenance request endpoints.
func SetupMaintenanceRoutes(app *fiber.App, db *sql.DB, jwtSecret string) {
	api := app.Group("/api/maintenance")
	api.Use(auth.Middleware(jwtSecret))

	api.Get("/", func(c *fiber.Ctx) error {
		return GetMaintenanceAPI(c, db)
	})
	api.Get("/stats", func(c *fiber.Ctx) error {
		return GetMaintenanceStatsAPI(c, db)
	})
	api.Post("/", func(c *fiber.Ctx) error {
		return CreateMaintenanceAPI(c, db)
	})
	api.Put("/:id/status", func(c *fiber.Ctx) error {
		return UpdateMaintenanceStatusAPI(c, db)
	})
	api.Post("/:id/delete", func(c *fiber.Ctx) error {
		return DeleteMaintenanceAPI(c, db)
	})
	api.Post("/:id/restore", func(c *fiber.Ctx) error {
		return RestoreMaintenanceAPI(c, db)
	})
}
