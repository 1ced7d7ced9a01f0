package main

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/jaesumin02/Apartment-Billing-System/app/config"
	"github.com/jaesumin02/Apartment-Billing-System/app/database"
	"github.com/jaesumin02/Apartment-Billing-System/app/routes/activity"
	"github.com/jaesumin02/Apartment-Billing-System/app/routes/auth"
	"github.com/jaesumin02/Apartment-Billing-System/app/routes/dashboard"
	"github.com/jaesumin02/Apartment-Billing-System/app/routes/maintenance"
	"github.com/jaesumin02/Apartment-Billing-System/app/routes/payments"
	"github.com/jaesumin02/Apartment-Billing-System/app/routes/staff"
	"github.com/jaesumin02/Apartment-Billing-System/app/routes/tenants"
	"github.com/jaesumin02/Apartment-Billing-System/app/routes/units"
)

// customErrorHandler keeps API errors as JSON and page errors as rendered views.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	if code == fiber.StatusNotFound {
		return c.Status(code).Render("404", fiber.Map{
			"Title": "Page Not Found - Apartment Billing",
		})
	}
	return c.Status(code).Render("error", fiber.Map{
		"Title":   "Error - Apartment Billing",
		"Code":    code,
		"Message": err.Error(),
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	defer cfg.DB.Close()

	if err := database.RunMigrations(cfg.DB); err != nil {
		log.Fatal("Migration failed:", err)
	}
	if err := database.SeedDefaults(cfg.DB); err != nil {
		log.Fatal("Seeding failed:", err)
	}

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})

	auth.SetupAuthRoutes(app, cfg.DB, cfg.JWTSecret)
	dashboard.SetupDashboardRoutes(app, cfg.DB, cfg.JWTSecret)
	units.SetupUnitsRoutes(app, cfg.DB, cfg.JWTSecret)
	tenants.SetupTenantsRoutes(app, cfg.DB, cfg.JWTSecret)
	payments.SetupPaymentsRoutes(app, cfg.DB, cfg.JWTSecret)
	maintenance.SetupMaintenanceRoutes(app, cfg.DB, cfg.JWTSecret)
	staff.SetupStaffRoutes(app, cfg.DB, cfg.JWTSecret)
	activity.SetupActivityRoutes(app, cfg.DB, cfg.JWTSecret)

	log.Printf("Apartment Billing System listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("Server failed:", err)
	}
}
