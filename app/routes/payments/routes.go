package payments

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/jaesumin02/Apartment-Billing-System/app/routes/auth"
)

// SetupPaymentsRoutes registers the billing endpoints.
func SetupPaymentsRoutes(app *fiber.App, db *sql.DB, jwtSecret string) {
	api := app.Group("/api/payments")
	api.Use(auth.Middleware(jwtSecret))

	api.Get("/", func(c *fiber.Ctx) error {
		return GetPaymentsAPI(c, db)
	})
	api.Get("/summary", func(c *fiber.Ctx) error {
		return GetPaymentSummaryAPI(c, db)
	})
	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetPaymentByIDAPI(c, db)
	})
	api.Post("/", func(c *fiber.Ctx) error {
		return CreatePaymentAPI(c, db)
	})
	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdatePaymentAPI(c, db)
	})
	api.Post("/generate", func(c *fiber.Ctx) error {
		return GenerateAutoBillsAPI(c, db)
	})
}
