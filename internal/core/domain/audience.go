package domain

import "time"

// Audience is a single recipient record.
type Audience struct {
	ID        int64
	Name      string
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
}

// Recipient is the subset of an audience needed to deliver an email.
type Recipient struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
