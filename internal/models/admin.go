package models

import "time"

// Admin represents an administrator account. PasswordHash is a bcrypt hash.
type Admin struct {
	ID           uint64
	Username     string
	PasswordHash string
}

// Session is a logged-in admin session kept in redis.
type Session struct {
	ID        string    `json:"id"`
	AdminID   uint64    `json:"admin_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
