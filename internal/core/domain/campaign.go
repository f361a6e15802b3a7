package domain

import "time"

// Campaign is reusable email content: a subject line and an HTML body.
type Campaign struct {
	ID           int64
	Name         string
	SubjectLine  string
	EmailContent string
	CreatedAt    time.Time
}
