package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"
)

// migration is one schema version: a name for the log and the statements
// that take the schema from version-1 to version. Statements must be safe
// to run exactly once; the schema_migrations table guarantees they are.
type migration struct {
	version int
	name    string
	stmts   []string
}

// migrations is the ordered history of the schema. Append only; never edit
// an entry that has shipped.
var migrations = []migration{
	{
		version: 1,
		name:    "create core tables",
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS users (
				user_id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT UNIQUE,
				password TEXT
			)`,
			`CREATE TABLE IF NOT EXISTS units (
				unit_id INTEGER PRIMARY KEY AUTOINCREMENT,
				unit_code TEXT,
				unit_type TEXT,
				price REAL,
				status TEXT
			)`,
			`CREATE TABLE IF NOT EXISTS tenants (
				tenant_id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT,
				contact TEXT,
				unit_id INTEGER,
				tenant_type TEXT,
				move_in DATE,
				move_out DATE,
				status TEXT,
				FOREIGN KEY(unit_id) REFERENCES units(unit_id)
			)`,
			`CREATE TABLE IF NOT EXISTS payments (
				payment_id INTEGER PRIMARY KEY AUTOINCREMENT,
				tenant_id INTEGER,
				rent REAL,
				electricity REAL,
				water REAL,
				total REAL,
				date_paid DATE,
				status TEXT,
				FOREIGN KEY(tenant_id) REFERENCES tenants(tenant_id)
			)`,
			`CREATE TABLE IF NOT EXISTS maintenance (
				request_id INTEGER PRIMARY KEY AUTOINCREMENT,
				tenant_id INTEGER,
				description TEXT,
				priority TEXT,
				date_requested DATE,
				status TEXT,
				FOREIGN KEY(tenant_id) REFERENCES tenants(tenant_id)
			)`,
			`CREATE TABLE IF NOT EXISTS staff (
				staff_id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT,
				contact TEXT,
				role TEXT
			)`,
			`CREATE TABLE IF NOT EXISTS activity_log (
				log_id INTEGER PRIMARY KEY AUTOINCREMENT,
				timestamp TEXT,
				action TEXT,
				details TEXT
			)`,
		},
	},
	{
		version: 2,
		name:    "add unit capacity",
		stmts: []string{
			`ALTER TABLE units ADD COLUMN capacity INTEGER DEFAULT 1`,
		},
	},
	{
		version: 3,
		name:    "add tenant guardian and emergency contact fields",
		stmts: []string{
			`ALTER TABLE tenants ADD COLUMN guardian_name TEXT DEFAULT ''`,
			`ALTER TABLE tenants ADD COLUMN guardian_contact TEXT DEFAULT ''`,
			`ALTER TABLE tenants ADD COLUMN guardian_relation TEXT DEFAULT ''`,
			`ALTER TABLE tenants ADD COLUMN emergency_contact TEXT DEFAULT ''`,
		},
	},
	{
		version: 4,
		name:    "add tenant advance and deposit",
		stmts: []string{
			`ALTER TABLE tenants ADD COLUMN advance_paid REAL DEFAULT 0`,
			`ALTER TABLE tenants ADD COLUMN deposit_paid REAL DEFAULT 0`,
		},
	},
	{
		version: 5,
		name:    "add tenant move-out reason",
		stmts: []string{
			`ALTER TABLE tenants ADD COLUMN move_out_reason TEXT DEFAULT ''`,
		},
	},
	{
		version: 6,
		name:    "add payment note for auto-bill tagging",
		stmts: []string{
			`ALTER TABLE payments ADD COLUMN note TEXT DEFAULT ''`,
		},
	},
	{
		version: 7,
		name:    "add maintenance fee, staff, completion and soft-delete",
		stmts: []string{
			`ALTER TABLE maintenance ADD COLUMN fee REAL DEFAULT 0`,
			`ALTER TABLE maintenance ADD COLUMN staff TEXT DEFAULT ''`,
			`ALTER TABLE maintenance ADD COLUMN date_completed DATE DEFAULT NULL`,
			`ALTER TABLE maintenance ADD COLUMN deleted INTEGER DEFAULT 0`,
		},
	},
	{
		version: 8,
		name:    "add staff status for archiving",
		stmts: []string{
			`ALTER TABLE staff ADD COLUMN status TEXT DEFAULT 'Active'`,
		},
	},
}

// RunMigrations applies every migration the database has not seen yet,
// in order, recording each applied version in schema_migrations.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name TEXT,
		applied_at TEXT
	)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	current, err := currentVersion(db)
	if err != nil {
		return err
	}

	applied := 0
	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := apply(db, m); err != nil {
			return err
		}
		applied++
	}

	if applied == 0 {
		log.Printf("Schema up to date at version %d", current)
	} else {
		log.Printf("Applied %d migration(s), schema now at version %d", applied, migrations[len(migrations)-1].version)
	}
	return nil
}

func currentVersion(db *sql.DB) (int, error) {
	var v sql.NullInt64
	if err := db.QueryRow(`SELECT MAX(version) FROM schema_migrations`).Scan(&v); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if !v.Valid {
		return 0, nil
	}
	return int(v.Int64), nil
}

func apply(db *sql.DB, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range m.stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
		}
	}

	_, err = tx.Exec(`INSERT INTO schema_migrations (version, name, applied_at) VALUES (?,?,?)`,
		m.version, m.name, time.Now().Format("2006-01-02 15:04:05"))
	if err != nil {
		return fmt.Errorf("failed to record migration %d: %w", m.version, err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Printf("Applied migration %d: %s", m.version, m.name)
	return nil
}
