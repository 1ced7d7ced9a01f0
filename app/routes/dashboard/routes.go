package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/jaesumin02/Apartment-Billing-System/app/database"
	"github.com/jaesumin02/Apartment-Billing-System/app/routes/auth"
)

// SetupDashboardRoutes registers the dashboard page and stats endpoint.
func SetupDashboardRoutes(app *fiber.App, db *sql.DB, jwtSecret string) {
	app.Get("/dashboard", auth.Middleware(jwtSecret), func(c *fiber.Ctx) error {
		return GetDashboard(c, db)
	})

	api := app.Group("/api/dashboard")
	api.Use(auth.Middleware(jwtSecret))
	api.Get("/stats", func(c *fiber.Ctx) error {
		return GetDashboardStatsAPI(c, db)
	})
}

// GetDashboard renders the dashboard page with fresh aggregates.
func GetDashboard(c *fiber.Ctx, db *sql.DB) error {
	stats, err := database.GetDashboardStats(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard statistics")
	}

	return c.Render("dashboard", fiber.Map{
		"Title":    "Dashboard - Apartment Billing",
		"Username": c.Locals("username"),
		"Stats":    stats,
	})
}

// GetDashboardStatsAPI returns the dashboard aggregates as JSON.
func GetDashboardStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := database.GetDashboardStats(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch dashboard statistics",
			"details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}
