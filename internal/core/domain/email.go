package domain

// Email is a single outgoing message to one recipient.
type Email struct {
	From    string
	To      string
	Subject string
	HTML    string
}
