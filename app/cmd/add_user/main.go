package main

import (
	"flag"
	"log"

	"github.com/jaesumin02/Apartment-Billing-System/app/config"
	"github.com/jaesumin02/Apartment-Billing-System/app/database"
	"github.com/jaesumin02/Apartment-Billing-System/app/routes/auth"
)

// Provision a login user without going through the web app.
func main() {
	username := flag.String("username", "", "username for the new login")
	password := flag.String("password", "", "password for the new login")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	defer cfg.DB.Close()

	if err := database.RunMigrations(cfg.DB); err != nil {
		log.Fatal("Migration failed:", err)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	id, err := database.CreateUser(cfg.DB, *username, hash)
	if err != nil {
		log.Fatal("Failed to create user:", err)
	}
	log.Printf("Created user %s (id %d)", *username, id)
}
