package tenants

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/jaesumin02/Apartment-Billing-System/app/routes/auth"
)

// SetupTenantsRoutes registers the tenant lifecycle endpoints.
func SetupTenantsRoutes(app *fiber.App, db *sql.DB, jwtSecret string) {
	api := app.Group("/api/tenants")
	api.Use(auth.Middleware(jwtSecret))

	api.Get("/", func(c *fiber.Ctx) error {
		return GetTenantsAPI(c, db)
	})
	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetTenantByIDAPI(c, db)
	})
	api.Post("/", func(c *fiber.Ctx) error {
		return CreateTenantAPI(c, db)
	})
	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateTenantAPI(c, db)
	})
	api.Post("/:id/terminate", func(c *fiber.Ctx) error {
		return TerminateTenantAPI(c, db)
	})
	api.Post("/:id/restore", func(c *fiber.Ctx) error {
		return RestoreTenantAPI(c, db)
	})
}
