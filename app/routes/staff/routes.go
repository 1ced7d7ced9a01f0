package staff

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/jaesumin02/Apartment-Billing-System/app/routes/auth"
)

// SetupStaffRoutes registers the staff endpoints.
func SetupStaffRoutes(app *fiber.App, db *sql.DB, jwtSecret string) {
	api := app.Group("/api/staff")
	api.Use(auth.Middleware(jwtSecret))

	api.Get("/", func(c *fiber.Ctx) error {
		return GetStaffAPI(c, db)
	})
	api.Get("/names", func(c *fiber.Ctx) error {
		return GetActiveStaffNamesAPI(c, db)
	})
	api.Post("/", func(c *fiber.Ctx) error {
		return CreateStaffAPI(c, db)
	})
	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateStaffAPI(c, db)
	})
	api.Post("/:id/archive", func(c *fiber.Ctx) error {
		return ArchiveStaffAPI(c, db)
	})
	api.Post("/:id/restore", func(c *fiber.Ctx) error {
		return RestoreStaffAPI(c, db)
	})
}
