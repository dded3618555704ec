package models

import "time"

// Contact represents a contact form submission.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
