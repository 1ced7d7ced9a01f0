package database

import (
	"database/sql"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// SeedDefaults populates an empty database with the fixed unit inventory and
// a default login. It is a no-op when the tables already hold rows.
func SeedDefaults(db *sql.DB) error {
	var userCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&userCount); err != nil {
		return err
	}
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin"), 14)
		if err != nil {
			return err
		}
		if _, err := db.Exec(`INSERT INTO users (username, password) VALUES (?,?)`, "admin", string(hash)); err != nil {
			return err
		}
		log.Println("Seeded default admin user")
	}

	var unitCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM units`).Scan(&unitCount); err != nil {
		return err
	}
	if unitCount > 0 {
		return nil
	}

	insert := `INSERT INTO units (unit_code, unit_type, price, status, capacity) VALUES (?,?,?,?,?)`

	for i := 1; i <= 20; i++ {
		code := fmt.Sprintf("S%02d", i)
		if _, err := db.Exec(insert, code, "Solo", 4500.0, "Vacant", 1); err != nil {
			return err
		}
	}
	for i := 1; i <= 25; i++ {
		code := fmt.Sprintf("F%02d", i)
		if _, err := db.Exec(insert, code, "Family", 9000.0, "Vacant", 1); err != nil {
			return err
		}
	}
	for i := 1; i <= 5; i++ {
		code := fmt.Sprintf("D%02d", i)
		if _, err := db.Exec(insert, code, "Dorm", 8000.0, "Vacant", 6); err != nil {
			return err
		}
	}

	log.Println("Seeded 50 units (20 Solo, 25 Family, 5 Dorm)")
	return nil
}
