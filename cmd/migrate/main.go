package main

import (
	"log"

	"github.com/jaesumin02/Apartment-Billing-System/app/config"
	"github.com/jaesumin02/Apartment-Billing-System/app/database"
)

// Run migrations and seeding against the configured database without
// starting the server.
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
	log.Println("Migration and seeding completed")
}
