package domain

import "time"

// Account is an administrator login. PasswordHash holds a bcrypt hash and
// never the plaintext password.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
