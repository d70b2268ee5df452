package auth

import "time"

// User is a registered account. Email is the stable identifier every save
// and result is keyed by; it is stored lowercased.
type User struct {
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}
