package config

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// Config holds everything the application needs at runtime. It is built once
// in main and handed down explicitly; nothing reads it through a global.
type Config struct {
	DB        *sql.DB
	DBPath    string
	Port      string
	JWTSecret string
}

// Load reads the environment (optionally from a .env file) and opens the
// embedded SQLite database.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	cfg := &Config{
		DBPath:    getenv("APARTMENT_DB", "apartment_pro.db"),
		Port:      getenv("PORT", "3000"),
		JWTSecret: getenv("JWT_SECRET", "apartment-billing-secret-key"),
	}

	db, err := OpenDB(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	cfg.DB = db

	log.Printf("Database opened at %s", cfg.DBPath)
	return cfg, nil
}

// OpenDB opens (creating if needed) the SQLite database at path. The app
// assumes one process and one writer, so the pool is pinned to a single
// connection.
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
