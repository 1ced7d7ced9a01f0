package database

import (
	"database/sql"

	"github.com/jaesumin02/Apartment-Billing-System/app/models"
)

// GetUserByUsername returns a login user or sql.ErrNoRows.
func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	user := &models.User{}
	err := db.QueryRow(
		`SELECT user_id, username, password FROM users WHERE username = ?`, username).
		Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a login user with an already-hashed password.
func CreateUser(db *sql.DB, username, passwordHash string) (int64, error) {
	res, err := db.Exec(`INSERT INTO users (username, password) VALUES (?,?)`, username, passwordHash)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateUserPassword replaces a user's password hash.
func UpdateUserPassword(db *sql.DB, userID int64, passwordHash string) error {
	res, err := db.Exec(`UPDATE users SET password = ? WHERE user_id = ?`, passwordHash, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
