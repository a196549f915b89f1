package domain

import "time"

// User models a registered account. PasswordHash is the bcrypt digest of the
// password; the plaintext is never stored.
type User struct {
	ID           string    `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
