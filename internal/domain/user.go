package domain

import (
	"time"
)

// User represents a registered account
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claims represents the verified identity carried by a session token
type Claims struct {
	UserID    string    `json:"user_id"`
	IsAdmin   bool      `json:"is_admin"`
	TokenID   string    `json:"token_id"` // jti, used by the deny-list
	ExpiresAt time.Time `json:"expires_at"`
}
