package models

// User represents a login credential pair. Passwords are stored bcrypt-hashed.
type User struct {
	ID       int64  `json:"user_id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
